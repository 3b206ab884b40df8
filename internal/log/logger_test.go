package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetDebug(false)
	Debugf("hidden %d", 1)
	Info("shown %s", "info")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown info")

	buf.Reset()
	SetDebug(true)
	defer SetDebug(false)
	Debugf("now visible")
	assert.Contains(t, buf.String(), "now visible")

	buf.Reset()
	Warnf("warned about %s", "x")
	Errorf("failed on %s", "y")
	assert.Contains(t, buf.String(), "warned about x")
	assert.Contains(t, buf.String(), "failed on y")
}
