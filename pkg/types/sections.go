package types

import "sort"

// Section names used by comparison reports.
const (
	SectionDeleted = "Deleted"
	SectionAdded   = "Added"
	SectionChanged = "Changed"
)

// AllSections lists the comparison report sections in report order.
var AllSections = []string{SectionDeleted, SectionAdded, SectionChanged}

// Sections holds the three path lists parsed from a comparison report.
type Sections struct {
	Deleted []string
	Added   []string
	Changed []string
}

// Get returns the list for a named section, or nil for an unknown name.
func (s *Sections) Get(name string) []string {
	switch name {
	case SectionDeleted:
		return s.Deleted
	case SectionAdded:
		return s.Added
	case SectionChanged:
		return s.Changed
	}
	return nil
}

// Append adds a path to a named section. Unknown names are ignored.
func (s *Sections) Append(name, path string) {
	switch name {
	case SectionDeleted:
		s.Deleted = append(s.Deleted, path)
	case SectionAdded:
		s.Added = append(s.Added, path)
	case SectionChanged:
		s.Changed = append(s.Changed, path)
	}
}

// Union returns the deduplicated union of the named sections, sorted so the
// result is stable regardless of input ordering or duplication.
func (s *Sections) Union(include ...string) []string {
	if len(include) == 0 {
		include = AllSections
	}
	seen := make(map[string]struct{})
	var out []string
	for _, name := range include {
		for _, p := range s.Get(name) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
