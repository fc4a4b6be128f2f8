package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"course-catalog/internal/textutil"
)

// AnnotatePrereqs reads the tab-delimited schedule source and appends
// parsed prerequisite groups to matching catalog entries. Like the
// loader, an unopenable source yields a diagnostic and leaves the
// catalog untouched.
func AnnotatePrereqs(path string, cat *Catalog) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("cannot open prerequisite file %s: %v", path, err)}
	}
	defer f.Close()
	return AnnotateReader(f, cat)
}

// AnnotateReader parses the schedule source: header discarded, then each
// line carries "number<TAB>name<TAB>prereq expression". The name column
// is read and ignored. Rows whose number is not already in the catalog
// are skipped silently; a missing expression column counts as empty.
// A read failure ends the scan and comes back as a diagnostic; rows
// already processed keep their annotations.
func AnnotateReader(r io.Reader, cat *Catalog) []string {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, maxLineBytes)
	header := true
	for sc.Scan() {
		line := sc.Text()
		if header {
			header = false
			continue
		}
		if textutil.Trim(line) == "" {
			continue
		}

		fields := textutil.SplitByDelimiter(line, '\t')
		course, ok := cat.Get(fields[0])
		if !ok {
			continue
		}

		raw := ""
		if len(fields) > 2 {
			raw = fields[2]
		}
		course.AddPrereqs(ParsePrereqs(raw))
	}
	if err := sc.Err(); err != nil {
		return []string{fmt.Sprintf("error reading prerequisite source: %v", err)}
	}
	return nil
}

// ParsePrereqs decomposes a raw prerequisite expression into AND-groups
// of OR-alternatives. Commas separate groups; the literal token "OR"
// separates alternatives inside a group.
//
// One dedup set spans the whole expression and holds two kinds of
// strings: individual alternatives, and whole groups rendered as their
// space-joined form. An alternative already in the set is dropped (but
// still recorded); a surviving group whose joined form is already in the
// set is dropped entirely. Because both kinds share the set, a single
// alternative that equals an earlier group's joined rendering collides
// and is dropped too. That collision is part of the contract and is
// pinned by tests; keep the domains merged.
func ParsePrereqs(raw string) [][]string {
	var groups [][]string
	seen := make(map[string]bool)

	for _, groupExpr := range textutil.SplitByDelimiter(raw, ',') {
		alternatives := textutil.SplitByWord(groupExpr, "OR")

		var uniqueOptions []string
		for _, alt := range alternatives {
			if !seen[alt] {
				uniqueOptions = append(uniqueOptions, alt)
			}
			// recorded whether or not it survived
			seen[alt] = true
		}
		if len(uniqueOptions) == 0 {
			continue
		}

		joined := textutil.Trim(strings.Join(uniqueOptions, " "))
		// A lone surviving alternative IS its own joined form and was
		// recorded just above; only multi-alternative renderings can
		// genuinely duplicate an earlier entry.
		if len(uniqueOptions) > 1 && seen[joined] {
			continue
		}
		seen[joined] = true
		groups = append(groups, uniqueOptions)
	}
	return groups
}
