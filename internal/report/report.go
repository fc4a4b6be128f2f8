package report

import (
	"fmt"
	"io"
	"strings"

	"course-catalog/internal/catalog"
)

// Write renders one block per course to w, in ascending course-number
// order:
//
//	Course: <number> - <name>
//	Prerequisites: [<alt> <alt> ...] [<alt> ...] ...
//	<blank line>
//
// Writes to the same catalog produce byte-identical output. Stream
// errors are left to the writer; there is nothing useful to do with
// them here.
func Write(w io.Writer, cat *catalog.Catalog) {
	for _, course := range cat.Courses() {
		fmt.Fprintf(w, "Course: %s - %s\n", course.Number, course.Name)

		// The trailing space on a course with no groups is part of the
		// output contract.
		var b strings.Builder
		b.WriteString("Prerequisites: ")
		for i, group := range course.Prereqs {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("[")
			b.WriteString(strings.Join(group, " "))
			b.WriteString("]")
		}
		fmt.Fprintln(w, b.String())
		fmt.Fprintln(w)
	}
}
