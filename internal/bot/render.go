package bot

import (
	"fmt"
	"strings"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

const welcomeText = "👋 Welcome to your Personal Secretary!\n\nWhat would you like to do?"

func formatItemDetails(item domain.WorkItem) string {
	notes := item.Notes
	if notes == "" {
		notes = "None"
	}
	return fmt.Sprintf("%s %s\n\n📚 Course: %s\n📅 Due: %s\n📌 Notes: %s\nStatus: %s %s\n\nWhat would you like to do?",
		item.Type.Glyph(), item.Name, item.CourseCode, item.DueDate, notes, item.Status.Glyph(), item.Status)
}

func formatItemSaved(d domain.ItemDraft) string {
	notes := d.Notes
	if notes == "" {
		notes = "No notes"
	}
	return fmt.Sprintf("✅ %s added!\n\n%s %s\n📚 %s\n📅 %s\n📌 %s",
		titleCase(string(d.Type)), d.Type.Glyph(), d.Name, d.CourseCode, d.DueDate, notes)
}

func formatCourseSaved(d domain.CourseDraft) string {
	professor := d.Professor
	if professor == "" {
		professor = "N/A"
	}
	return fmt.Sprintf("✅ Course added!\n\n📖 %s\n🔤 %s\n📅 Semester %d\n👨‍🏫 %s\n🎓 %d ECTS",
		d.Name, d.Code, d.Semester, professor, d.ECTS)
}

func formatCourses(courses []domain.Course) string {
	if len(courses) == 0 {
		return "📭 No courses found."
	}
	var b strings.Builder
	b.WriteString("📖 Your Courses:\n\n")
	for _, c := range courses {
		fmt.Fprintf(&b, "📚 %s (%s)\n   Semester %d | %d ECTS\n\n", c.Name, c.CourseCode, c.Semester, c.ECTS)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatUpcoming(work *domain.UpcomingWork, days int) string {
	if work.Total() == 0 {
		return fmt.Sprintf("🎉 Nothing due in the next %d days!", days)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 Due in the next %d days:\n\n", days)
	sections := []struct {
		title string
		items []domain.WorkItem
	}{
		{"📝 Assignments", work.Assignments},
		{"🔬 Labs", work.Labs},
		{"🎯 Projects", work.Projects},
	}
	for _, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}
		b.WriteString(sec.title + ":\n")
		for _, it := range sec.items {
			fmt.Fprintf(&b, "  • %s (%s) - %s\n", it.Name, it.CourseCode, it.DueDate)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
