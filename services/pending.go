package services

import "sync"

const (
	ActionSave     = "save"
	ActionRemove   = "remove"
	ActionCheckout = "checkout"
)

// ActionGuard tracks which actions have a request in flight per session. A
// second request for the same action is refused until the first settles;
// different actions are not serialised against each other.
type ActionGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{inflight: map[string]struct{}{}}
}

func guardKey(sessionID, action string) string {
	return sessionID + ":" + action
}

func (g *ActionGuard) Begin(sessionID, action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := guardKey(sessionID, action)
	if _, busy := g.inflight[key]; busy {
		return false
	}
	g.inflight[key] = struct{}{}
	return true
}

func (g *ActionGuard) End(sessionID, action string) {
	g.mu.Lock()
	delete(g.inflight, guardKey(sessionID, action))
	g.mu.Unlock()
}

func (g *ActionGuard) Pending(sessionID, action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inflight[guardKey(sessionID, action)]
	return busy
}

// sessionLocks hands out one mutex per session so draft updates for
// different tables never wait on each other.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: map[string]*sessionLock{}}
}

// lock blocks until the session's mutex is held and returns its release.
func (l *sessionLocks) lock(sessionID string) (unlock func()) {
	l.mu.Lock()
	sl, ok := l.locks[sessionID]
	if !ok {
		sl = &sessionLock{}
		l.locks[sessionID] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.Lock()
	return func() {
		sl.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mu.Unlock()
	}
}
