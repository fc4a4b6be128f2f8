package domain

// Course is the canonical representation of one catalog entry. The loader
// creates entries from the names source, and the annotator appends
// prerequisite groups parsed from the schedule source.
type Course struct {
	Number string // unique course identifier, e.g. "MATH 115"
	Name   string // full course name, e.g. "Calculus I"; empty on malformed rows

	// Prereqs holds AND-groups of OR-alternatives: the course requires
	// every group, and within a group any one alternative suffices.
	// Empty groups are never stored.
	Prereqs [][]string
}

// AddPrereqs appends parsed prerequisite groups. Groups accumulated by
// earlier annotation passes are kept, never replaced.
func (c *Course) AddPrereqs(groups [][]string) {
	c.Prereqs = append(c.Prereqs, groups...)
}
