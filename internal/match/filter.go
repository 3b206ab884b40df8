package match

import (
	"strings"

	"github.com/gobwas/glob"

	"modclean/internal/log"
)

// Filter restricts a walk to filenames matching configured glob patterns.
// An empty filter matches everything.
type Filter struct {
	globs []glob.Glob
}

// NewFilter compiles the configured extension patterns. Bare extensions
// like ".uasset" are widened to "*.uasset"; patterns that fail to compile
// are reported and skipped.
func NewFilter(patterns []string) *Filter {
	f := &Filter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, ".") && !strings.ContainsAny(p, "*?[{") {
			p = "*" + p
		}
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			log.Warnf("skipping invalid extension filter pattern %q: %v", p, err)
			continue
		}
		f.globs = append(f.globs, g)
	}
	return f
}

// Match reports whether a filename passes the filter.
func (f *Filter) Match(name string) bool {
	if f == nil || len(f.globs) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, g := range f.globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}
