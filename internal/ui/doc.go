// Package ui provides the Bubble Tea table screen for tripdesk.
//
// # Layout
//
//	tripdesk  10 users  as of 15:04:05  T:Nightfox      header
//	Search: ...   f ‹ Filter ›   c [Hide ID Column]   controls
//	┌──────────────── Users ────────────────┐
//	│ ID  Name  Trips  Gender  City         │         table pane
//	└───────────────────────────────────────┘
//	• •  Page 1 of 2 · 10 matches  5 per page         pagination
//	/ search · f next category · ...                  key hints
//
// # State
//
// The Model owns a roster.View, which holds the canonical record set, the
// filter, and the ID column toggle. Every handler mutates the View and then
// calls syncTable, which recomputes the visible page through roster.Apply and
// rebuilds the bubbles table and paginator from it. Nothing else caches rows.
//
// # Loading
//
// Init issues one load command built from Options.Load. The first loadedMsg
// populates the View; later ones are ignored. Run cancels the load context
// when the program exits, and the command drops any result that arrives after
// that. A failed load shows an empty table.
//
// # Keys
//
//   - /: focus search; typing filters live, enter keeps, esc clears
//   - f/F: next/previous category
//   - c: toggle the ID column
//   - ←/h, →/l, g, G: previous, next, first, last page
//   - s: cycle page size (5, 10, 20, 50)
//   - j/k: move the row cursor
//   - T: cycle theme (saved to prefs)
//   - ?: help, q/ctrl+c: quit
package ui
