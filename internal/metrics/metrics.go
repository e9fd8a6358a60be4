// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	IncUserRegistered()
	IncUserLoggedIn()
	IncAuthFailure()

	IncEventCreated()
	IncEventUpdated()
	IncEventDeleted()
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	UsersRegistered int64 `json:"users_registered"`
	UserLogins      int64 `json:"user_logins"`
	AuthFailures    int64 `json:"auth_failures"`
	EventsCreated   int64 `json:"events_created"`
	EventsUpdated   int64 `json:"events_updated"`
	EventsDeleted   int64 `json:"events_deleted"`
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
