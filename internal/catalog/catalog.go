package catalog

import (
	"sort"

	"course-catalog/internal/domain"
)

// Catalog maps course numbers to their entries. It is built once per run:
// the loader fills it, the annotator appends prerequisite groups to
// existing entries, and nothing mutates it after reporting starts.
type Catalog struct {
	courses map[string]*domain.Course
}

func New() *Catalog {
	return &Catalog{courses: make(map[string]*domain.Course)}
}

// Put inserts or overwrites the entry keyed by the course number
// (last-row-wins for duplicate rows in the source).
func (c *Catalog) Put(course *domain.Course) {
	c.courses[course.Number] = course
}

func (c *Catalog) Get(number string) (*domain.Course, bool) {
	course, ok := c.courses[number]
	return course, ok
}

func (c *Catalog) Len() int {
	return len(c.courses)
}

// Numbers returns every course number in ascending order, so iteration
// over the catalog is stable across runs.
func (c *Catalog) Numbers() []string {
	numbers := make([]string, 0, len(c.courses))
	for n := range c.courses {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

// Courses returns every entry in ascending course-number order.
func (c *Catalog) Courses() []*domain.Course {
	numbers := c.Numbers()
	out := make([]*domain.Course, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, c.courses[n])
	}
	return out
}
