package domain

// Sentinel values substituted when a remote field is absent. A record
// carrying a sentinel is treated as partially initialized and hidden
// from pick-lists.
const (
	UntitledName = "Untitled"
	NoDate       = "No date"
)

// WorkItem is an assignment, lab or project record mirrored from the
// hosted store. Dates stay in YYYY-MM-DD wire form; there is no
// time-of-day component.
type WorkItem struct {
	ID          string
	Type        ItemType
	Name        string
	CourseCode  string
	DueDate     string
	Notes       string
	Status      Status
	Description string // labs only
	Archived    bool
}

// Placeholder reports whether the record is a partially initialized
// remote record that must not appear in user-facing pick-lists.
func (w WorkItem) Placeholder() bool {
	return w.Name == "" || w.Name == UntitledName
}

// FilterPlaceholders returns items without sentinel-valued names,
// preserving order.
func FilterPlaceholders(items []WorkItem) []WorkItem {
	out := make([]WorkItem, 0, len(items))
	for _, it := range items {
		if !it.Placeholder() {
			out = append(out, it)
		}
	}
	return out
}

// UpcomingWork groups date-bounded work items per collection.
type UpcomingWork struct {
	Assignments []WorkItem
	Labs        []WorkItem
	Projects    []WorkItem
}

// Total counts items across all three collections.
func (u UpcomingWork) Total() int {
	return len(u.Assignments) + len(u.Labs) + len(u.Projects)
}
