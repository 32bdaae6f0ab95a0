package bot

import (
	"sync"

	"github.com/DimitrisBelias/Personal-Secretary/internal/domain"
)

// Session is the per-chat conversation state: the current machine
// state plus the draft being accumulated and the item under action.
// It lives for one dialogue and is never persisted.
type Session struct {
	State State

	ItemDraft   *domain.ItemDraft
	CourseDraft *domain.CourseDraft

	ListType     domain.ItemType
	SelectedID   string
	SelectedType domain.ItemType
}

// Reset discards any in-flight flow and returns to the main menu.
func (s *Session) Reset() {
	*s = Session{State: StateMainMenu}
}

// SessionStore maps chat ids to their sessions. The transport delivers
// events for one chat serially, so the returned pointer is mutated
// without further locking; the lock only guards the map itself across
// independent chats.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Get returns the session for a chat, creating one at the main menu on
// first contact.
func (st *SessionStore) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	sess, ok := st.sessions[chatID]
	if !ok {
		sess = &Session{State: StateMainMenu}
		st.sessions[chatID] = sess
	}
	return sess
}
