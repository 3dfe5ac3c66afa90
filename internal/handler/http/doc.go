// Package http contains the HTTP transport layer of go-contact-keeper.
//
// The handler exposes the REST API under /api/v1: user registration, login
// and profile management, contact CRUD and search with pagination, and the
// addresses nested under each contact. Every response, success or failure,
// uses the same envelope (statusCode, message, optional data, optional
// paging), and protected routes require a bearer session token checked by
// the auth middleware.
package http
