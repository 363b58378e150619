package session

import "fmt"

// Store owns the ordered session collection and the active index.
// It never holds zero sessions, and session ids are never reused.
type Store struct {
	sessions []*Session
	active   int
	nextID   int
	logCap   int
}

// NewStore creates a store seeded with one default session ("Session 1",
// id 0, active). logCapacity <= 0 selects the default log ring size.
func NewStore(logCapacity int) *Store {
	st := &Store{logCap: logCapacity}
	st.sessions = append(st.sessions, New(0, "Session 1", logCapacity))
	st.nextID = 1
	return st
}

// Len returns the number of sessions.
func (st *Store) Len() int {
	return len(st.sessions)
}

// ActiveIndex returns the index of the active session.
func (st *Store) ActiveIndex() int {
	return st.active
}

// Active returns the active session.
func (st *Store) Active() *Session {
	return st.sessions[st.active]
}

// Get returns the session at index.
func (st *Store) Get(index int) (*Session, bool) {
	if index < 0 || index >= len(st.sessions) {
		return nil, false
	}
	return st.sessions[index], true
}

// Sessions returns the ordered session list.
func (st *Store) Sessions() []*Session {
	return st.sessions
}

// Add appends a session with the next unused id and returns its index.
// An empty name defaults to "Session {id+1}". The active index is unchanged.
func (st *Store) Add(name string) int {
	id := st.nextID
	st.nextID++
	if name == "" {
		name = fmt.Sprintf("Session %d", id+1)
	}
	st.sessions = append(st.sessions, New(id, name, st.logCap))
	return len(st.sessions) - 1
}

// AddWithPort appends a session pre-configured for port.
// An empty name defaults to "Session {id+1} - {port}".
func (st *Store) AddWithPort(port, name string) int {
	id := st.nextID
	st.nextID++
	if name == "" {
		name = fmt.Sprintf("Session %d - %s", id+1, port)
	}
	s := New(id, name, st.logCap)
	s.Config.Port = port
	st.sessions = append(st.sessions, s)
	return len(st.sessions) - 1
}

// Remove deletes the session at index and returns it. Refused (nil, false)
// when index is out of range or removal would leave the store empty; a
// refused call mutates nothing.
func (st *Store) Remove(index int) (*Session, bool) {
	if len(st.sessions) <= 1 {
		return nil, false
	}
	if index < 0 || index >= len(st.sessions) {
		return nil, false
	}

	removed := st.sessions[index]
	st.sessions = append(st.sessions[:index], st.sessions[index+1:]...)

	if st.active >= len(st.sessions) {
		st.active = len(st.sessions) - 1
	} else if st.active > index {
		st.active--
	}
	return removed, true
}

// SwitchTo makes index the active session, refusing out-of-range values.
func (st *Store) SwitchTo(index int) bool {
	if index < 0 || index >= len(st.sessions) {
		return false
	}
	st.active = index
	return true
}

// Next advances the active index cyclically.
func (st *Store) Next() {
	st.active = (st.active + 1) % len(st.sessions)
}

// Prev retreats the active index cyclically.
func (st *Store) Prev() {
	st.active = (st.active + len(st.sessions) - 1) % len(st.sessions)
}

// Rename sets the session's display name, refusing out-of-range indexes.
func (st *Store) Rename(index int, name string) bool {
	if index < 0 || index >= len(st.sessions) {
		return false
	}
	st.sessions[index].Name = name
	return true
}

// DuplicateActive clones the active session under a new id with runtime
// state reset, appends it, and returns its index.
func (st *Store) DuplicateActive() int {
	id := st.nextID
	st.nextID++
	st.sessions = append(st.sessions, duplicateOf(st.Active(), id))
	return len(st.sessions) - 1
}
