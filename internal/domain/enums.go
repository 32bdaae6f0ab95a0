package domain

// ItemType identifies one of the three work item collections.
type ItemType string

const (
	ItemAssignment ItemType = "assignment"
	ItemLab        ItemType = "lab"
	ItemProject    ItemType = "project"
)

// WorkItemTypes is the canonical ordering of the work item collections.
var WorkItemTypes = []ItemType{ItemAssignment, ItemLab, ItemProject}

func (t ItemType) Valid() bool {
	switch t {
	case ItemAssignment, ItemLab, ItemProject:
		return true
	}
	return false
}

// Plural returns the collection name used in user-facing lists.
func (t ItemType) Plural() string {
	return string(t) + "s"
}

// Glyph returns the emoji shown next to items of this type.
func (t ItemType) Glyph() string {
	switch t {
	case ItemLab:
		return "🔬"
	case ItemProject:
		return "🎯"
	default:
		return "📝"
	}
}

// Status is the closed set of work item statuses. The string values match
// the single-select options in the hosted database.
type Status string

const (
	StatusNotStarted Status = "Not started"
	StatusInProgress Status = "In progress"
	StatusDone       Status = "Done"
)

// Statuses is the canonical ordering of statuses for keyboards.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

// ParseStatus maps a raw status string to a Status for display purposes.
// Unrecognized values collapse to StatusNotStarted; the stored value is
// left untouched.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return Status(s)
	}
	return StatusNotStarted
}

// Glyph returns the emoji shown next to a status.
func (s Status) Glyph() string {
	switch s {
	case StatusInProgress:
		return "🔵"
	case StatusDone:
		return "✅"
	default:
		return "⚪"
	}
}
