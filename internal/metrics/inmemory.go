package metrics

import "sync/atomic"

// InMemoryRecorder implements Recorder with atomic counters.
// Suitable for a single process; exposed via the metrics endpoint.
type InMemoryRecorder struct {
	usersRegistered atomic.Int64
	userLogins      atomic.Int64
	authFailures    atomic.Int64
	eventsCreated   atomic.Int64
	eventsUpdated   atomic.Int64
	eventsDeleted   atomic.Int64
}

// NewInMemory returns an in-memory Recorder.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() { m.usersRegistered.Add(1) }

// IncUserLoggedIn increments the login counter.
func (m *InMemoryRecorder) IncUserLoggedIn() { m.userLogins.Add(1) }

// IncAuthFailure increments the failed-authentication counter.
func (m *InMemoryRecorder) IncAuthFailure() { m.authFailures.Add(1) }

// IncEventCreated increments the event creation counter.
func (m *InMemoryRecorder) IncEventCreated() { m.eventsCreated.Add(1) }

// IncEventUpdated increments the event update counter.
func (m *InMemoryRecorder) IncEventUpdated() { m.eventsUpdated.Add(1) }

// IncEventDeleted increments the event deletion counter.
func (m *InMemoryRecorder) IncEventDeleted() { m.eventsDeleted.Add(1) }

// Snapshot returns the current counter values.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered: m.usersRegistered.Load(),
		UserLogins:      m.userLogins.Load(),
		AuthFailures:    m.authFailures.Load(),
		EventsCreated:   m.eventsCreated.Load(),
		EventsUpdated:   m.eventsUpdated.Load(),
		EventsDeleted:   m.eventsDeleted.Load(),
	}
}
