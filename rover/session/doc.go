// Package session manages mission sessions for the Mars Rover mission server.
//
// The session package handles:
//   - Session creation with random 4-character IDs
//   - Case-insensitive session lookup
//   - Expiry of idle sessions
//   - Persistence through a pluggable SessionPersistence backend
//
// Persistence Backends:
//
// FilePersistence stores one JSON document per session in a directory,
// optionally zstd-compressed (*.json.zst). Both forms are readable regardless
// of the current setting. SQLitePersistence stores sessions as rows of a
// single sessions table.
//
// Every persisted session carries its mission configuration, so a session
// created from a script or a since-deleted config file can still be restored.
//
// Usage:
//
//	store, err := session.NewFilePersistence("sessions", configMgr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManagerWithPersistence(store)
//	if err := manager.LoadPersistedSessions(); err != nil {
//		log.Printf("Warning: %v", err)
//	}
package session
