// Package match correlates logical asset paths against files on disk.
//
// Logical paths come out of engine logs or comparison reports anchored at
// Content/Mods/. On disk the same asset may differ in case, drive, or carry
// a Local directory injected by the packaging pipeline, so candidates are
// accepted on a case-insensitive filename match plus agreement of the last
// path components after normalization.
package match

import (
	"path/filepath"
	"strings"
)

// suffixDepth is how many trailing path components must agree for a
// candidate to count as a true match. Targets with fewer components are
// compared over what they have.
const suffixDepth = 3

// Target is a logical asset path prepared for comparison.
type Target struct {
	Raw        string
	Relative   string // below the last Content/Mods/, native separators
	Filename   string
	components []string
}

// NewTarget normalizes a raw logical path into a Target.
func NewTarget(raw string) Target {
	rel := StripAnchor(raw)
	comps := RemoveNoise(SplitComponents(rel))
	filename := ""
	if len(comps) > 0 {
		filename = comps[len(comps)-1]
	}
	return Target{
		Raw:        raw,
		Relative:   filepath.FromSlash(strings.Join(comps, "/")),
		Filename:   filename,
		components: comps,
	}
}

// Suffix returns the last components used for correlation, at most
// suffixDepth of them.
func (t Target) Suffix() []string {
	return lastN(t.components, suffixDepth)
}

// StripAnchor returns the portion of path after its last Content/Mods/
// occurrence, or the whole path when the anchor is absent.
func StripAnchor(path string) string {
	return afterLast(path, "Content/Mods/")
}

// SplitComponents normalizes separators to forward slashes and splits the
// path into components, dropping empty ones.
func SplitComponents(path string) []string {
	norm := strings.ReplaceAll(path, `\`, "/")
	var comps []string
	for _, c := range strings.Split(norm, "/") {
		if c != "" {
			comps = append(comps, c)
		}
	}
	return comps
}

// RemoveNoise strips the first literal Local component, a directory the
// packaging pipeline injects that logical paths never carry.
func RemoveNoise(components []string) []string {
	for i, c := range components {
		if c == "Local" {
			out := make([]string, 0, len(components)-1)
			out = append(out, components[:i]...)
			return append(out, components[i+1:]...)
		}
	}
	return components
}

// candidateSuffix extracts the comparison components from a candidate's
// root-relative path: the portion after /Local/ when present, otherwise
// after /Content/Mods/, with any remaining Local component removed.
func candidateSuffix(relPath string) []string {
	norm := strings.ReplaceAll(relPath, `\`, "/")
	var compare string
	if strings.Contains(norm, "/Local/") {
		compare = afterLast(norm, "/Local/")
	} else {
		compare = afterLast(norm, "/Content/Mods/")
	}
	return RemoveNoise(SplitComponents(compare))
}

// suffixMatches reports whether the candidate components end with the
// target's comparison suffix. The filename has already been matched
// case-insensitively; the remaining components compare exactly.
func suffixMatches(target Target, candidate []string) bool {
	want := target.Suffix()
	if len(want) == 0 || len(candidate) < len(want) {
		return false
	}
	got := lastN(candidate, len(want))
	for i := range want {
		if i == len(want)-1 {
			if !strings.EqualFold(want[i], got[i]) {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

func afterLast(s, sep string) string {
	if idx := strings.LastIndex(s, sep); idx >= 0 {
		return s[idx+len(sep):]
	}
	return s
}

func lastN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
