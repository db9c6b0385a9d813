// Package catalog provides an HTTP client for the LocalLibrary catalog API.
//
// # Overview
//
// The catalog service exposes the book list that the browser renders. This
// package owns the wire format, the HTTP call and the failure taxonomy; it
// knows nothing about views or fetch lifecycles.
//
// # Client Usage
//
//	client, err := catalog.NewClient("localhost:3000", 10*time.Second, log)
//	if err != nil {
//		return err
//	}
//	books, err := client.FetchBooks(ctx)
//
// # API Endpoint
//
//   - GET /catalog/books: {"book_list": [{"_id", "title", "url", "author": {"first_name", "last_name"}}]}
//
// Unknown fields are ignored. Order of book_list is preserved.
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json
//   - Include User-Agent: folio/0.1
//   - Carry a fresh X-Request-ID so client and server logs can be joined
//
// # Error Handling
//
// FetchBooks fails with one of three types:
//
//   - *TransportError: no response (connection refused, timeout, cancelled)
//   - *StatusError: the service answered with a non-2xx status
//   - *ParseError: invalid JSON, missing or null book_list, a record without
//     _id or author
//
// Use errors.As to tell them apart. The browser shows all of them the same
// way, as "Error: <message>".
//
// Example error messages:
//   - "request /catalog/books: dial tcp 127.0.0.1:3000: connect: connection refused"
//   - "catalog /catalog/books returned status 500"
//   - "catalog /catalog/books: response has no book_list"
//
// # URL Construction
//
//   - "localhost:3000" → http://localhost:3000
//   - "https://library.example.com/any/path" → https://library.example.com
//
// # Thread Safety
//
// Client is safe for concurrent use.
package catalog
