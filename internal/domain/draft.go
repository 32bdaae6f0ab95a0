package domain

// ItemDraft accumulates the fields of a work item across a conversation
// flow. It is assembled into a single create call at the terminal state.
type ItemDraft struct {
	Type        ItemType
	Name        string
	CourseCode  string
	DueDate     string
	Description string // labs only
	Notes       string
	Status      Status // empty means StatusNotStarted on creation
}

// CourseDraft accumulates the fields of a course across the add-course
// flow. Professor and ECTS are optional.
type CourseDraft struct {
	Name      string
	Code      string
	Semester  int
	Professor string
	ECTS      int
}
