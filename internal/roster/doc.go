// Package roster shapes the fetched user list into table pages.
//
// # Overview
//
// Three pieces live here:
//
//   - Derive: turns fetched users into Records, adding trips, gender, and
//     city from each user's position in the list
//   - Apply: the filter engine, a pure function of (records, Filter)
//   - View: the state container the UI mutates through small handlers
//
// # Filter Order
//
// Apply runs in a fixed order:
//
//  1. Search: keep records where any field value, stringified, contains the
//     search text case-insensitively. Pass-through fields count, nested ones
//     through their leaf values.
//  2. Category: when the category is a real value, keep records whose gender
//     equals it. "Filter" (the unset sentinel), "showall", and "" do nothing.
//  3. Page: slice [(page-1)*size, page*size). Pages past the end are empty.
//
// Result.Total is the match count after step 2, so the pagination control
// can reach every page of a filtered result.
//
// # State
//
// View never caches the visible page. Every read goes through Apply, so
// changing the filter or loading records cannot leave a stale page behind.
// Search and category changes go back to page 1; page moves keep the search
// and category.
package roster
