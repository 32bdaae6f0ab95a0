package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

func (r *Router) handleListMenu(ctx context.Context, sess *Session, ev Event) Reply {
	switch ev.Callback {
	case cbListAssignments, cbListLabs, cbListProjects:
		t := map[string]domain.ItemType{
			cbListAssignments: domain.ItemAssignment,
			cbListLabs:        domain.ItemLab,
			cbListProjects:    domain.ItemProject,
		}[ev.Callback]
		items, err := r.store.ListItems(ctx, t)
		if err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: listMenuKeyboard()}
		}
		items = domain.FilterPlaceholders(items)
		if len(items) == 0 {
			return Reply{
				Text:     fmt.Sprintf("📭 No %s found.", t.Plural()),
				Keyboard: listMenuKeyboard(),
			}
		}
		sess.ListType = t
		sess.State = StateListSelect
		return Reply{
			Text:     fmt.Sprintf("%s Your %s:", t.Glyph(), t.Plural()),
			Keyboard: itemsKeyboard(items),
		}
	case cbListCourses:
		courses, err := r.store.ListCourses(ctx)
		if err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: listMenuKeyboard()}
		}
		return Reply{
			Text:     formatCourses(domain.FilterPlaceholderCourses(courses)),
			Keyboard: listMenuKeyboard(),
		}
	case cbBackMain:
		return r.backToMain(sess)
	}
	return Reply{Text: "What would you like to list?", Keyboard: listMenuKeyboard()}
}

func (r *Router) handleListSelect(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackList {
		return r.backToList(sess)
	}
	if strings.HasPrefix(ev.Callback, cbItemPrefix) {
		prefix := strings.TrimPrefix(ev.Callback, cbItemPrefix)
		items, err := r.store.ListItems(ctx, sess.ListType)
		if err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: listMenuKeyboard()}
		}
		item := resolveByPrefix(items, prefix)
		if item == nil {
			sess.State = StateListMenu
			return Reply{Text: "❌ Item not found", Keyboard: listMenuKeyboard()}
		}
		sess.SelectedID = item.ID
		sess.SelectedType = sess.ListType
		sess.State = StateItemAction
		return Reply{Text: formatItemDetails(*item), Keyboard: itemActionKeyboard()}
	}
	return r.reshowItems(ctx, sess)
}

// reshowItems re-renders the selectable list for the session's list
// type, falling back to the list menu when it emptied out.
func (r *Router) reshowItems(ctx context.Context, sess *Session) Reply {
	items, err := r.store.ListItems(ctx, sess.ListType)
	if err != nil {
		sess.State = StateListMenu
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: listMenuKeyboard()}
	}
	items = domain.FilterPlaceholders(items)
	if len(items) == 0 {
		sess.State = StateListMenu
		return Reply{
			Text:     fmt.Sprintf("📭 No %s found.", sess.ListType.Plural()),
			Keyboard: listMenuKeyboard(),
		}
	}
	sess.State = StateListSelect
	return Reply{
		Text:     fmt.Sprintf("%s Your %s:", sess.ListType.Glyph(), sess.ListType.Plural()),
		Keyboard: itemsKeyboard(items),
	}
}

// showItem re-fetches the selected item and renders its action view.
// Used whenever an edit lands or a sub-flow is abandoned.
func (r *Router) showItem(ctx context.Context, sess *Session) Reply {
	item, err := r.store.GetItem(ctx, sess.SelectedType, sess.SelectedID)
	if err != nil {
		sess.State = StateListMenu
		return Reply{Text: "❌ Item not found", Keyboard: listMenuKeyboard()}
	}
	sess.State = StateItemAction
	return Reply{Text: formatItemDetails(*item), Keyboard: itemActionKeyboard()}
}

func (r *Router) handleItemAction(ctx context.Context, sess *Session, ev Event) Reply {
	switch {
	case ev.Callback == cbBackItems:
		sess.SelectedID = ""
		return r.reshowItems(ctx, sess)
	case strings.HasPrefix(ev.Callback, cbStatusPrefix):
		status := domain.ParseStatus(strings.TrimPrefix(ev.Callback, cbStatusPrefix))
		if err := r.store.UpdateStatus(ctx, sess.SelectedID, status); err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: itemActionKeyboard()}
		}
		return r.showItem(ctx, sess)
	case ev.Callback == cbEditDate:
		sess.State = StateEditDate
		return Reply{Text: "📅 New due date:", Keyboard: dateKeyboard(r.now(), cbBackAction)}
	case ev.Callback == cbEditCourse:
		courses, err := r.store.ListCourses(ctx)
		if err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: itemActionKeyboard()}
		}
		sess.State = StateEditCourse
		return Reply{
			Text:     "📚 Move it to which course?",
			Keyboard: coursesKeyboard(domain.FilterPlaceholderCourses(courses), cbBackAction),
		}
	case ev.Callback == cbEditNotes:
		sess.State = StateEditNotes
		return Reply{Text: "✏️ Enter the new notes:", Keyboard: backKeyboard(cbBackAction)}
	case ev.Callback == cbDelete:
		sess.State = StateConfirmDelete
		return Reply{Text: "⚠️ Delete this item? This cannot be undone.", Keyboard: confirmDeleteKeyboard()}
	}
	return r.showItem(ctx, sess)
}

func (r *Router) handleEditDate(ctx context.Context, sess *Session, ev Event) Reply {
	var date string
	switch {
	case ev.Callback == cbBackAction:
		return r.showItem(ctx, sess)
	case ev.Callback == cbDateCustom:
		return Reply{Text: "✏️ Enter the due date (YYYY-MM-DD):", Keyboard: backKeyboard(cbBackAction)}
	case strings.HasPrefix(ev.Callback, cbDatePrefix):
		date = strings.TrimPrefix(ev.Callback, cbDatePrefix)
	case ev.Text != "":
		date = strings.TrimSpace(ev.Text)
		if !validDate(date) {
			return Reply{Text: invalidDateText, Keyboard: dateKeyboard(r.now(), cbBackAction)}
		}
	default:
		return Reply{Text: "📅 New due date:", Keyboard: dateKeyboard(r.now(), cbBackAction)}
	}
	if err := r.store.UpdateDueDate(ctx, sess.SelectedID, date); err != nil {
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: backKeyboard(cbBackAction)}
	}
	return r.showItem(ctx, sess)
}

func (r *Router) handleEditCourse(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAction {
		return r.showItem(ctx, sess)
	}
	if strings.HasPrefix(ev.Callback, cbCoursePrefix) {
		code := strings.TrimPrefix(ev.Callback, cbCoursePrefix)
		if err := r.store.UpdateCourse(ctx, sess.SelectedID, code); err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: backKeyboard(cbBackAction)}
		}
		return r.showItem(ctx, sess)
	}
	return r.showItem(ctx, sess)
}

func (r *Router) handleEditNotes(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackAction {
		return r.showItem(ctx, sess)
	}
	if ev.Text == "" {
		return Reply{Text: "✏️ Enter the new notes:", Keyboard: backKeyboard(cbBackAction)}
	}
	if err := r.store.UpdateNotes(ctx, sess.SelectedID, strings.TrimSpace(ev.Text)); err != nil {
		return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: backKeyboard(cbBackAction)}
	}
	return r.showItem(ctx, sess)
}

func (r *Router) handleConfirmDelete(ctx context.Context, sess *Session, ev Event) Reply {
	switch ev.Callback {
	case cbConfirmDelete:
		if err := r.store.Archive(ctx, sess.SelectedID); err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: confirmDeleteKeyboard()}
		}
		sess.SelectedID = ""
		sess.State = StateListMenu
		return Reply{Text: "🗑️ Deleted!", Keyboard: listMenuKeyboard()}
	case cbCancelDelete:
		return r.showItem(ctx, sess)
	}
	return Reply{Text: "⚠️ Delete this item? This cannot be undone.", Keyboard: confirmDeleteKeyboard()}
}
