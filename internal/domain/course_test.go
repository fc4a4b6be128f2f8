package domain

import (
	"reflect"
	"testing"
)

func TestCourse(t *testing.T) {
	// Create a test course
	course := Course{
		Number: "MATH 116",
		Name:   "Calculus II",
	}

	// Test field values
	if course.Number != "MATH 116" {
		t.Errorf("Expected Number to be 'MATH 116', got '%s'", course.Number)
	}

	if course.Name != "Calculus II" {
		t.Errorf("Expected Name to be 'Calculus II', got '%s'", course.Name)
	}

	if len(course.Prereqs) != 0 {
		t.Errorf("Expected Prereqs to start empty, got %v", course.Prereqs)
	}
}

func TestCourseAddPrereqs(t *testing.T) {
	course := Course{Number: "EECS 281", Name: "Data Structures"}

	course.AddPrereqs([][]string{{"EECS 203"}, {"EECS 280"}})
	course.AddPrereqs([][]string{{"MATH 115", "MATH 116"}})

	expected := [][]string{
		{"EECS 203"},
		{"EECS 280"},
		{"MATH 115", "MATH 116"},
	}

	if !reflect.DeepEqual(course.Prereqs, expected) {
		t.Errorf("Expected Prereqs to be %v, got %v", expected, course.Prereqs)
	}

	// A second pass appends, it must not replace what is already there.
	course.AddPrereqs([][]string{{"PHYSICS 140"}})
	if len(course.Prereqs) != 4 {
		t.Errorf("Expected 4 groups after second pass, got %d", len(course.Prereqs))
	}
}
