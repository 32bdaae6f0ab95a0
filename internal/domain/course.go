package domain

// Course is a course record mirrored from the hosted store. CourseCode
// is unique by convention only; nothing enforces it, and a work item may
// reference a code with no matching course.
type Course struct {
	ID         string
	Name       string
	CourseCode string
	Semester   int
	Professor  string
	ECTS       int
}

// Placeholder reports whether the course lacks the fields needed to be
// offered in a pick-list.
func (c Course) Placeholder() bool {
	return c.Name == "" || c.Name == UntitledName || c.CourseCode == ""
}

// FilterPlaceholderCourses returns courses usable in pick-lists,
// preserving order.
func FilterPlaceholderCourses(courses []Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if !c.Placeholder() {
			out = append(out, c)
		}
	}
	return out
}
