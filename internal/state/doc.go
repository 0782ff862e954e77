// Package state holds the result of the one-time user load.
//
// The loader runs in a bubbletea command goroutine while the UI reads on the
// program goroutine, so the Store guards its Snapshot with a sync.RWMutex
// and hands out copies.
//
// # Update Semantics
//
//	// Success: records replace whatever was there
//	store.Update(records, nil)
//	→ snapshot.Records = records (cloned)
//	→ snapshot.Loaded = true
//
//	// Failure: the set stays empty, the error is kept for logging
//	store.Update(nil, err)
//	→ snapshot.Records = nil
//	→ snapshot.LastError = err
//
// Attempted is set either way so the UI can stop showing "Loading...".
// The UI never shows LastError; an empty table is the whole failure story.
package state
