package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (r *Router) handleMainMenu(sess *Session, ev Event) Reply {
	switch ev.Callback {
	case cbMenuAdd:
		sess.State = StateAddMenu
		return Reply{Text: "What would you like to add?", Keyboard: addMenuKeyboard()}
	case cbMenuList:
		sess.State = StateListMenu
		return Reply{Text: "What would you like to list?", Keyboard: listMenuKeyboard()}
	case cbMenuUpcoming:
		sess.State = StateUpcomingMenu
		return Reply{Text: "Show work due within:", Keyboard: upcomingMenuKeyboard()}
	}
	return Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()}
}

func (r *Router) backToMain(sess *Session) Reply {
	sess.Reset()
	return Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()}
}

// backToAdd abandons any in-flight draft and re-shows the add menu.
func (r *Router) backToAdd(sess *Session) Reply {
	sess.ItemDraft = nil
	sess.CourseDraft = nil
	sess.State = StateAddMenu
	return Reply{Text: "What would you like to add?", Keyboard: addMenuKeyboard()}
}

func (r *Router) backToList(sess *Session) Reply {
	sess.State = StateListMenu
	sess.SelectedID = ""
	return Reply{Text: "What would you like to list?", Keyboard: listMenuKeyboard()}
}

func (r *Router) handleUpcomingMenu(ctx context.Context, sess *Session, ev Event) Reply {
	if ev.Callback == cbBackMain {
		return r.backToMain(sess)
	}
	if strings.HasPrefix(ev.Callback, cbUpcomingPrefix) {
		days, err := strconv.Atoi(strings.TrimPrefix(ev.Callback, cbUpcomingPrefix))
		if err != nil || days <= 0 {
			return Reply{Text: "Show work due within:", Keyboard: upcomingMenuKeyboard()}
		}
		work, err := r.store.Upcoming(ctx, days)
		if err != nil {
			return Reply{Text: fmt.Sprintf("❌ Error: %v", err), Keyboard: upcomingMenuKeyboard()}
		}
		return Reply{Text: formatUpcoming(work, days), Keyboard: backKeyboard(cbBackMain)}
	}
	return Reply{Text: "Show work due within:", Keyboard: upcomingMenuKeyboard()}
}
