package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"course-catalog/internal/domain"
	"course-catalog/internal/textutil"
)

// maxLineBytes caps how long a single source line may grow. The scanner
// default (64KB) is too small for schedule rows carrying very long
// prerequisite cells, and overrunning it would silently end the scan.
const maxLineBytes = 10 * 1024 * 1024

// LoadCourses reads the comma-delimited course names source and returns
// the catalog plus any diagnostics. An unopenable source is not fatal:
// the catalog comes back empty and the diagnostic names the file, so
// downstream stages degrade to a no-op instead of aborting the run.
func LoadCourses(path string) (*Catalog, []string) {
	f, err := os.Open(path)
	if err != nil {
		return New(), []string{fmt.Sprintf("cannot open course names file %s: %v", path, err)}
	}
	defer f.Close()

	cat := New()
	return cat, ReadCoursesInto(f, cat)
}

// ReadCourses parses the names source into a fresh catalog.
func ReadCourses(r io.Reader) (*Catalog, []string) {
	cat := New()
	return cat, ReadCoursesInto(r, cat)
}

// ReadCoursesInto parses the names source into cat: the header line is
// discarded unconditionally, then each line contributes "number,name,..."
// with both fields trimmed. Columns past the second are ignored and a
// missing name column yields an empty name. A row whose number already
// exists overwrites the name (last-row-wins) but keeps any prerequisite
// groups already attached to the entry. A read failure ends the scan and
// comes back as a diagnostic; rows already read stay in the catalog.
func ReadCoursesInto(r io.Reader, cat *Catalog) []string {
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

		fields := textutil.SplitByDelimiter(line, ',')
		number := fields[0]
		name := ""
		if len(fields) > 1 {
			name = fields[1]
		}

		if existing, ok := cat.Get(number); ok {
			existing.Name = name
			continue
		}
		cat.Put(&domain.Course{Number: number, Name: name})
	}
	if err := sc.Err(); err != nil {
		return []string{fmt.Sprintf("error reading course names source: %v", err)}
	}
	return nil
}
