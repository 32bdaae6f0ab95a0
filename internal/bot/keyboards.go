package bot

import (
	"fmt"
	"time"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

// Button is one labeled key of an inline keyboard. Data is the opaque
// callback payload; the transport caps it at 64 bytes, which is why
// record ids are truncated before embedding.
type Button struct {
	Label string
	Data  string
}

// callbackIDPrefixLen is how much of a record id fits in a button
// payload next to its prefix. Selection re-resolves the full id by
// prefix-matching a freshly fetched list; on a (practically impossible)
// prefix collision the first match in list order wins.
const callbackIDPrefixLen = 32

func truncateID(id string) string {
	if len(id) > callbackIDPrefixLen {
		return id[:callbackIDPrefixLen]
	}
	return id
}

func resolveByPrefix(items []domain.WorkItem, prefix string) *domain.WorkItem {
	for i := range items {
		if len(items[i].ID) >= len(prefix) && items[i].ID[:len(prefix)] == prefix {
			return &items[i]
		}
	}
	return nil
}

func mainMenuKeyboard() [][]Button {
	return [][]Button{{
		{Label: "➕ Add", Data: cbMenuAdd},
		{Label: "📋 List", Data: cbMenuList},
		{Label: "📅 Upcoming", Data: cbMenuUpcoming},
	}}
}

func addMenuKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "📝 Assignment", Data: cbAddAssignment},
			{Label: "🔬 Lab", Data: cbAddLab},
		},
		{
			{Label: "🎯 Project", Data: cbAddProject},
			{Label: "📖 Course", Data: cbAddCourse},
		},
		{{Label: "🔙 Back", Data: cbBackMain}},
	}
}

func listMenuKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "📝 Assignments", Data: cbListAssignments},
			{Label: "🔬 Labs", Data: cbListLabs},
		},
		{
			{Label: "🎯 Projects", Data: cbListProjects},
			{Label: "📖 Courses", Data: cbListCourses},
		},
		{{Label: "🔙 Back", Data: cbBackMain}},
	}
}

func upcomingMenuKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "7 Days", Data: cbUpcomingPrefix + "7"},
			{Label: "14 Days", Data: cbUpcomingPrefix + "14"},
			{Label: "30 Days", Data: cbUpcomingPrefix + "30"},
		},
		{{Label: "🔙 Back", Data: cbBackMain}},
	}
}

// dateKeyboard offers today, tomorrow and one week out, plus a custom
// text entry. backData varies between the add and edit flows.
func dateKeyboard(today time.Time, backData string) [][]Button {
	tomorrow := today.AddDate(0, 0, 1)
	nextWeek := today.AddDate(0, 0, 7)

	return [][]Button{
		{
			{Label: fmt.Sprintf("📅 Today (%s)", today.Format("02/01")), Data: cbDatePrefix + today.Format(dateLayout)},
			{Label: fmt.Sprintf("📅 Tomorrow (%s)", tomorrow.Format("02/01")), Data: cbDatePrefix + tomorrow.Format(dateLayout)},
		},
		{
			{Label: fmt.Sprintf("📅 Next Week (%s)", nextWeek.Format("02/01")), Data: cbDatePrefix + nextWeek.Format(dateLayout)},
			{Label: "✏️ Custom", Data: cbDateCustom},
		},
		{{Label: "🔙 Back", Data: backData}},
	}
}

func skipKeyboard() [][]Button {
	return [][]Button{{
		{Label: "⏭️ Skip", Data: cbSkip},
		{Label: "🔙 Back", Data: cbBackAdd},
	}}
}

func doneKeyboard() [][]Button {
	return [][]Button{
		{
			{Label: "➕ Add Another", Data: cbMenuAdd},
			{Label: "📋 List", Data: cbMenuList},
		},
		{{Label: "🏠 Menu", Data: cbBackMain}},
	}
}

func backKeyboard(data string) [][]Button {
	return [][]Button{{{Label: "🔙 Back", Data: data}}}
}

// coursesKeyboard lists one course per row; names can be long.
func coursesKeyboard(courses []domain.Course, backData string) [][]Button {
	var rows [][]Button
	for _, c := range courses {
		rows = append(rows, []Button{{
			Label: fmt.Sprintf("%s - %s", c.CourseCode, c.Name),
			Data:  cbCoursePrefix + c.CourseCode,
		}})
	}
	rows = append(rows, []Button{{Label: "🔙 Back", Data: backData}})
	return rows
}

// itemsKeyboard lists selectable work items with truncated ids in the
// payloads. Callers filter placeholders beforehand.
func itemsKeyboard(items []domain.WorkItem) [][]Button {
	var rows [][]Button
	for _, it := range items {
		rows = append(rows, []Button{{
			Label: fmt.Sprintf("%s %s (%s)", it.Status.Glyph(), it.Name, it.CourseCode),
			Data:  cbItemPrefix + truncateID(it.ID),
		}})
	}
	rows = append(rows, []Button{{Label: "🔙 Back", Data: cbBackList}})
	return rows
}

func itemActionKeyboard() [][]Button {
	var statusRow []Button
	for _, s := range domain.Statuses {
		statusRow = append(statusRow, Button{
			Label: fmt.Sprintf("%s %s", s.Glyph(), s),
			Data:  cbStatusPrefix + string(s),
		})
	}
	return [][]Button{
		statusRow,
		{
			{Label: "📅 Change Date", Data: cbEditDate},
			{Label: "📚 Change Course", Data: cbEditCourse},
		},
		{
			{Label: "✏️ Edit Notes", Data: cbEditNotes},
			{Label: "🗑️ Delete", Data: cbDelete},
		},
		{{Label: "🔙 Back", Data: cbBackItems}},
	}
}

func confirmDeleteKeyboard() [][]Button {
	return [][]Button{{
		{Label: "✅ Yes, Delete", Data: cbConfirmDelete},
		{Label: "❌ Cancel", Data: cbCancelDelete},
	}}
}
