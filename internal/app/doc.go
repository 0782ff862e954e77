// Package app wires configuration, logging, the users client, the shared
// store, and the UI together. It is the composition root of tripdesk.
//
// # Startup
//
//	Run()
//	  ├─> config.Load()      read config.toml (defaults when missing)
//	  ├─> logging.Setup()    slog to the log file, tagged with a session id
//	  ├─> prefs.Load()       theme; unreadable prefs are logged, not fatal
//	  ├─> users.NewClient()  HTTP client for the user list endpoint
//	  └─> ui.Run()           table screen (blocks)
//
// The UI calls back into Load exactly once, off its event loop:
//
//	Load()
//	  ├─> fetcher.FetchUsers()
//	  ├─> roster.Derive()    trips, gender, city by position
//	  └─> store.Update()
//
// # Error Handling
//
// Config, logging, and client setup errors are returned from Run. A failed
// fetch is not: Load logs "fetch users failed" and the UI shows an empty
// table. There is no retry.
package app
