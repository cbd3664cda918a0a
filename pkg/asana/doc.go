// Package asana is a client for the Asana task-management REST API.
//
// # Overview
//
// The package is split into two layers:
//
//   - Dispatcher: owns transport, authentication, serialization, retries, and
//     pagination. It exposes five capabilities: Get, GetCollection, Post, Put,
//     and Delete.
//   - Resource services (Tasks, Projects, Tags, Workspaces, Users, Stories):
//     stateless routers that translate each operation into an HTTP verb and a
//     URL path, then delegate to the shared dispatcher. They hold no state
//     beyond the dispatcher reference and impose no ordering between
//     operations.
//
// Identifiers are substituted into paths as decimal integers only; payloads
// and query params pass through to the dispatcher unmodified, and dispatcher
// failures surface to callers unchanged.
//
// # Usage
//
//	client, err := asana.NewClient(&asana.Config{
//	    AccessToken: os.Getenv("ASANA_ACCESS_TOKEN"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	task, err := client.Tasks.FindByID(ctx, 123, nil)
//
// Collection operations paginate transparently: GetCollection follows
// next_page offsets and returns the aggregated items as one flat slice.
//
// # Errors
//
// Argument errors (missing or non-positive identifiers) are returned
// synchronously before any request is issued. API-level failures are returned
// as *Error carrying the HTTP status and the server's error messages;
// transport failures are returned as the underlying error. The client adds no
// recovery beyond retrying recoverable statuses (429 and 5xx) with
// exponential backoff.
package asana
