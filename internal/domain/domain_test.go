package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusInProgress, ParseStatus("In progress"))
	assert.Equal(t, StatusDone, ParseStatus("Done"))
	assert.Equal(t, StatusNotStarted, ParseStatus("Not started"))

	// Unrecognized remote values collapse to the default for display.
	assert.Equal(t, StatusNotStarted, ParseStatus("Blocked"))
	assert.Equal(t, StatusNotStarted, ParseStatus(""))
}

func TestItemType_Valid(t *testing.T) {
	for _, typ := range WorkItemTypes {
		assert.True(t, typ.Valid())
	}
	assert.False(t, ItemType("course").Valid())
	assert.False(t, ItemType("").Valid())
}

func TestWorkItem_Placeholder(t *testing.T) {
	assert.True(t, WorkItem{Name: ""}.Placeholder())
	assert.True(t, WorkItem{Name: UntitledName}.Placeholder())
	assert.False(t, WorkItem{Name: "Homework 3"}.Placeholder())
}

func TestFilterPlaceholders(t *testing.T) {
	items := []WorkItem{
		{ID: "1", Name: "Homework 3"},
		{ID: "2", Name: UntitledName},
		{ID: "3", Name: "Lab 2"},
		{ID: "4", Name: ""},
	}
	out := FilterPlaceholders(items)
	assert.Len(t, out, 2)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[1].ID)
}

func TestCourse_Placeholder(t *testing.T) {
	assert.True(t, Course{Name: UntitledName, CourseCode: "CS101"}.Placeholder())
	assert.True(t, Course{Name: "Algorithms", CourseCode: ""}.Placeholder())
	assert.False(t, Course{Name: "Algorithms", CourseCode: "CS101"}.Placeholder())
}

func TestUpcomingWork_Total(t *testing.T) {
	work := UpcomingWork{
		Assignments: []WorkItem{{Name: "a"}},
		Projects:    []WorkItem{{Name: "p1"}, {Name: "p2"}},
	}
	assert.Equal(t, 3, work.Total())
	assert.Equal(t, 0, UpcomingWork{}.Total())
}
