package bot

import (
	"context"
	"time"
)

// Event is one inbound interaction, already stripped of transport
// detail. Exactly one of Command, Callback or Text is meaningful.
type Event struct {
	ChatID   int64
	Command  string
	Callback string
	Text     string
}

// Reply is what a handler wants shown. Edit is set when the reply
// should replace the message carrying the pressed keyboard rather than
// append a new one.
type Reply struct {
	Text     string
	Keyboard [][]Button
	Edit     bool
}

// Router drives the conversation machine. It is transport neutral:
// the Telegram adapter feeds it Events and renders its Replies, and
// tests call Handle directly.
type Router struct {
	store    RecordStore
	sessions *SessionStore

	// now is used for the date keyboard's relative offers.
	now func() time.Time
}

// NewRouter wires a router over a record store.
func NewRouter(store RecordStore) *Router {
	return &Router{
		store:    store,
		sessions: NewSessionStore(),
		now:      time.Now,
	}
}

// Handle dispatches an event on the chat's current state and returns
// the reply to render. Commands are handled in any state; everything
// else is interpreted by the state the session is in.
func (r *Router) Handle(ctx context.Context, ev Event) Reply {
	sess := r.sessions.Get(ev.ChatID)

	switch ev.Command {
	case "start", "menu":
		sess.Reset()
		return Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()}
	case "cancel":
		sess.Reset()
		return Reply{Text: "❌ Cancelled. Returning to main menu.", Keyboard: mainMenuKeyboard()}
	}

	reply := r.dispatch(ctx, sess, ev)
	// Button presses edit the prompt in place; typed text gets a fresh
	// message below it.
	reply.Edit = ev.Callback != ""
	return reply
}

func (r *Router) dispatch(ctx context.Context, sess *Session, ev Event) Reply {
	switch sess.State {
	case StateMainMenu:
		return r.handleMainMenu(sess, ev)
	case StateAddMenu:
		return r.handleAddMenu(ctx, sess, ev)
	case StateAddItemName:
		return r.handleAddItemName(ctx, sess, ev)
	case StateAddItemCourse:
		return r.handleAddItemCourse(ctx, sess, ev)
	case StateAddItemDate:
		return r.handleAddItemDate(ctx, sess, ev)
	case StateAddItemDescription:
		return r.handleAddItemDescription(sess, ev)
	case StateAddItemNotes:
		return r.handleAddItemNotes(ctx, sess, ev)
	case StateAddCourseName:
		return r.handleAddCourseName(sess, ev)
	case StateAddCourseCode:
		return r.handleAddCourseCode(sess, ev)
	case StateAddCourseSemester:
		return r.handleAddCourseSemester(sess, ev)
	case StateAddCourseProfessor:
		return r.handleAddCourseProfessor(sess, ev)
	case StateAddCourseECTS:
		return r.handleAddCourseECTS(ctx, sess, ev)
	case StateListMenu:
		return r.handleListMenu(ctx, sess, ev)
	case StateListSelect:
		return r.handleListSelect(ctx, sess, ev)
	case StateItemAction:
		return r.handleItemAction(ctx, sess, ev)
	case StateEditDate:
		return r.handleEditDate(ctx, sess, ev)
	case StateEditCourse:
		return r.handleEditCourse(ctx, sess, ev)
	case StateEditNotes:
		return r.handleEditNotes(ctx, sess, ev)
	case StateConfirmDelete:
		return r.handleConfirmDelete(ctx, sess, ev)
	case StateUpcomingMenu:
		return r.handleUpcomingMenu(ctx, sess, ev)
	default:
		sess.Reset()
		return Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()}
	}
}
