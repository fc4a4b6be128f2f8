package catalog

import (
	"reflect"
	"testing"

	"course-catalog/internal/domain"
)

func TestCatalogPutGet(t *testing.T) {
	cat := New()

	if cat.Len() != 0 {
		t.Errorf("Expected new catalog to be empty, got %d entries", cat.Len())
	}

	cat.Put(&domain.Course{Number: "MATH 115", Name: "Calculus I"})
	cat.Put(&domain.Course{Number: "MATH 116", Name: "Calculus II"})

	course, ok := cat.Get("MATH 115")
	if !ok {
		t.Fatal("Expected MATH 115 to be present")
	}
	if course.Name != "Calculus I" {
		t.Errorf("Expected Name 'Calculus I', got %q", course.Name)
	}

	if _, ok := cat.Get("EECS 280"); ok {
		t.Error("Expected EECS 280 to be absent")
	}

	// Put with the same number overwrites the entry.
	cat.Put(&domain.Course{Number: "MATH 115", Name: "Calculus I (Honors)"})
	course, _ = cat.Get("MATH 115")
	if course.Name != "Calculus I (Honors)" {
		t.Errorf("Expected overwritten Name, got %q", course.Name)
	}
	if cat.Len() != 2 {
		t.Errorf("Expected 2 entries after overwrite, got %d", cat.Len())
	}
}

func TestCatalogOrdering(t *testing.T) {
	cat := New()
	for _, n := range []string{"PHYSICS 140", "EECS 203", "MATH 115", "EECS 280"} {
		cat.Put(&domain.Course{Number: n})
	}

	expected := []string{"EECS 203", "EECS 280", "MATH 115", "PHYSICS 140"}
	if numbers := cat.Numbers(); !reflect.DeepEqual(numbers, expected) {
		t.Errorf("Numbers() = %v, want %v", numbers, expected)
	}

	courses := cat.Courses()
	for i, c := range courses {
		if c.Number != expected[i] {
			t.Errorf("Courses()[%d].Number = %q, want %q", i, c.Number, expected[i])
		}
	}
}
