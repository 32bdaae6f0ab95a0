package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

const invalidDateText = "❌ Invalid date format. Please use YYYY-MM-DD\n\nExample: 2025-12-20"

func (r *Router) handleAddMenu(ctx context.Context, sess *Session, ev Event) Reply {
	switch ev.Callback {
	case cbAddAssignment, cbAddLab, cbAddProject:
		t := map[string]domain.ItemType{
			cbAddAssignment: domain.ItemAssignment,
			cbAddLab:        domain.ItemLab,
			cbAddProject:    domain.ItemProject,
		}[ev.Callback]
		sess.ItemDraft = &domain.ItemDraft{Type: t}
		sess.State = StateAddItemName
		return Reply{
			Text:     fmt.Sprintf("%s What's the name of the %s?", t.Glyph(), t),
			Keyboard: backKeyboard(cbBackAdd),
		}
	case cbAddCourse:
		sess.CourseDraft = &domain.CourseDraft{}
		sess.State = StateAddCourseName
		return Reply{Text: "📖 What's the name of the course?", Keyboard: backKeyboard(cbBackAdd)}
	case cbBackMain:
		return r.backToMain(sess)
	}
	return Reply{Text: "What would you like to add?", Keyboard: addMenuKeyboard()}
}

func (r *Router) handleAddItemName(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAdd {
		return r.backToAdd(sess)
	}
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		return Reply{
			Text:     fmt.Sprintf("%s What's the name of the %s?", sess.ItemDraft.Type.Glyph(), sess.ItemDraft.Type),
			Keyboard: backKeyboard(cbBackAdd),
		}
	}
	sess.ItemDraft.Name = name

	courses, err := r.store.ListCourses(ctx)
	if err != nil {
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: backKeyboard(cbBackAdd)}
	}
	courses = domain.FilterPlaceholderCourses(courses)
	if len(courses) == 0 {
		sess.ItemDraft = nil
		sess.State = StateAddMenu
		return Reply{
			Text:     "⚠️ No courses found!\n\nPlease add a course first.",
			Keyboard: addMenuKeyboard(),
		}
	}
	sess.State = StateAddItemCourse
	return Reply{Text: "📚 Which course is it for?", Keyboard: coursesKeyboard(courses, cbBackAdd)}
}

func (r *Router) handleAddItemCourse(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAdd {
		return r.backToAdd(sess)
	}
	if strings.HasPrefix(ev.Callback, cbCoursePrefix) {
		sess.ItemDraft.CourseCode = strings.TrimPrefix(ev.Callback, cbCoursePrefix)
		sess.State = StateAddItemDate
		return Reply{Text: "📅 When is it due?", Keyboard: dateKeyboard(r.now(), cbBackAdd)}
	}
	courses, err := r.store.ListCourses(ctx)
	if err != nil {
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: backKeyboard(cbBackAdd)}
	}
	return Reply{
		Text:     "📚 Which course is it for?",
		Keyboard: coursesKeyboard(domain.FilterPlaceholderCourses(courses), cbBackAdd),
	}
}

func (r *Router) handleAddItemDate(ctx context.Context, sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackAdd:
		return r.backToAdd(sess)
	case ev.Callback == cbDateCustom:
		return Reply{
			Text:     "✏️ Enter the due date (YYYY-MM-DD):",
			Keyboard: backKeyboard(cbBackAdd),
		}
	case strings.HasPrefix(ev.Callback, cbDatePrefix):
		sess.ItemDraft.DueDate = strings.TrimPrefix(ev.Callback, cbDatePrefix)
		return r.afterItemDate(sess)
	case ev.Text != "":
		if !validDate(strings.TrimSpace(ev.Text)) {
			return Reply{Text: invalidDateText, Keyboard: dateKeyboard(r.now(), cbBackAdd)}
		}
		sess.ItemDraft.DueDate = strings.TrimSpace(ev.Text)
		return r.afterItemDate(sess)
	}
	return Reply{Text: "📅 When is it due?", Keyboard: dateKeyboard(r.now(), cbBackAdd)}
}

// afterItemDate routes to the lab-only description step or straight to
// notes.
func (r *Router) afterItemDate(sess *Session) Reply {
	if sess.ItemDraft.Type == domain.ItemLab {
		sess.State = StateAddItemDescription
		return Reply{Text: "🔬 Describe the lab (or skip):", Keyboard: skipKeyboard()}
	}
	sess.State = StateAddItemNotes
	return Reply{Text: "📌 Any notes? (or skip)", Keyboard: skipKeyboard()}
}

func (r *Router) handleAddItemDescription(sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackAdd:
		return r.backToAdd(sess)
	case ev.Callback == cbSkip:
	case ev.Text != "":
		sess.ItemDraft.Description = strings.TrimSpace(ev.Text)
	default:
		return Reply{Text: "🔬 Describe the lab (or skip):", Keyboard: skipKeyboard()}
	}
	sess.State = StateAddItemNotes
	return Reply{Text: "📌 Any notes? (or skip)", Keyboard: skipKeyboard()}
}

func (r *Router) handleAddItemNotes(ctx context.Context, sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackAdd:
		return r.backToAdd(sess)
	case ev.Callback == cbSkip:
	case ev.Text != "":
		sess.ItemDraft.Notes = strings.TrimSpace(ev.Text)
	default:
		return Reply{Text: "📌 Any notes? (or skip)", Keyboard: skipKeyboard()}
	}

	draft := *sess.ItemDraft
	if err := r.store.AddItem(ctx, draft); err != nil {
		sess.Reset()
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: doneKeyboard()}
	}
	sess.Reset()
	return Reply{Text: formatItemSaved(draft), Keyboard: doneKeyboard()}
}

func (r *Router) handleAddCourseName(sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAdd {
		return r.backToAdd(sess)
	}
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		return Reply{Text: "📖 What's the name of the course?", Keyboard: backKeyboard(cbBackAdd)}
	}
	sess.CourseDraft.Name = name
	sess.State = StateAddCourseCode
	return Reply{Text: "🔤 What's the course code? (e.g. CS101)", Keyboard: backKeyboard(cbBackAdd)}
}

func (r *Router) handleAddCourseCode(sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAdd {
		return r.backToAdd(sess)
	}
	code := strings.TrimSpace(ev.Text)
	if code == "" {
		return Reply{Text: "🔤 What's the course code? (e.g. CS101)", Keyboard: backKeyboard(cbBackAdd)}
	}
	sess.CourseDraft.Code = strings.ToUpper(code)
	sess.State = StateAddCourseSemester
	return Reply{Text: "📅 Which semester? (e.g. 5)", Keyboard: backKeyboard(cbBackAdd)}
}

func (r *Router) handleAddCourseSemester(sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAdd {
		return r.backToAdd(sess)
	}
	n, err := strconv.Atoi(strings.TrimSpace(ev.Text))
	if err != nil || n <= 0 {
		return Reply{Text: "❌ Please enter a number", Keyboard: backKeyboard(cbBackAdd)}
	}
	sess.CourseDraft.Semester = n
	sess.State = StateAddCourseProfessor
	return Reply{Text: "👨‍🏫 Who teaches it? (or skip)", Keyboard: skipKeyboard()}
}

func (r *Router) handleAddCourseProfessor(sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackAdd:
		return r.backToAdd(sess)
	case ev.Callback == cbSkip:
	case ev.Text != "":
		sess.CourseDraft.Professor = strings.TrimSpace(ev.Text)
	default:
		return Reply{Text: "👨‍🏫 Who teaches it? (or skip)", Keyboard: skipKeyboard()}
	}
	sess.State = StateAddCourseECTS
	return Reply{Text: "🎓 How many ECTS? (or skip)", Keyboard: skipKeyboard()}
}

func (r *Router) handleAddCourseECTS(ctx context.Context, sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackAdd:
		return r.backToAdd(sess)
	case ev.Callback == cbSkip:
	case ev.Text != "":
		n, err := strconv.Atoi(strings.TrimSpace(ev.Text))
		if err != nil || n < 0 {
			return Reply{Text: "❌ Please enter a number", Keyboard: skipKeyboard()}
		}
		sess.CourseDraft.ECTS = n
	default:
		return Reply{Text: "🎓 How many ECTS? (or skip)", Keyboard: skipKeyboard()}
	}

	draft := *sess.CourseDraft
	if err := r.store.AddCourse(ctx, draft); err != nil {
		sess.Reset()
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: doneKeyboard()}
	}
	sess.Reset()
	return Reply{Text: formatCourseSaved(draft), Keyboard: doneKeyboard()}
}
