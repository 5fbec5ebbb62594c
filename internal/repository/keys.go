// Package repository holds the whole-collection repositories over the
// key/value store. Every mutation is a read-modify-write of one entire
// collection; each repository serializes its own writes so that concurrent
// handlers cannot interleave a read-modify-write cycle.
package repository

// Store keys. Each holds one JSON-serialized collection, except the session
// key, which holds a single user snapshot.
const (
	usersKey   = "users"
	coursesKey = "courses"
	subsKey    = "submissions"
	tasksKey   = "schedule_tasks"
	sessionKey = "current_session_user"
)
