// Package http is the inbound REST adapter. It maps echo requests onto the
// entity use cases and serves the embedded OpenAPI description together with
// a swagger UI at /swagger/.
package http
