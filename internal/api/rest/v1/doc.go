// Package v1 contains the HTTP handlers, request/response types and
// middleware of the Staffy REST API.
package v1
