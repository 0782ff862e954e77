// Package users provides the HTTP client for the remote user list.
//
// # Overview
//
// The client performs a single read-only GET against a configured endpoint
// (by default the public jsonplaceholder /users resource) and decodes a JSON
// array of user objects.
//
// # Payload
//
// Each element must carry an "id" (number or string) and a "name" (string).
// Every other top-level field is kept as raw JSON in User.Fields and is passed
// through untouched. DecodeFields turns those into plain Go values, keeping
// numbers as json.Number so their text survives for searching.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and a tripdesk User-Agent
//   - Are bounded by the client timeout (10s unless configured)
//
// # Error Handling
//
// FetchUsers wraps every failure with a short prefix:
//
//   - "create request": the request could not be built
//   - "execute request": network or timeout errors
//   - "api <path> returned status N": any non-2xx response
//   - "decode response": the body is not a valid user array
//
// Callers decide what to do with the error; the loader logs and drops it.
//
// # Usage Example
//
//	client, err := users.NewClient(cfg.Endpoint, cfg.Timeout)
//	if err != nil {
//		return err
//	}
//	list, err := client.FetchUsers(ctx)
package users
