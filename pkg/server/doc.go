// Package server exposes the layout pipeline over HTTP.
//
// # Routes
//
//	POST /v1/layout           catalog + solution (or architecture) -> layout JSON
//	POST /v1/render?format=f  same body -> rendered artifact (svg, dot, json, png, pdf)
//	GET  /v1/layout/last      the most recent successful layout
//	GET  /healthz             liveness probe
//
// Request bodies are JSON or YAML:
//
//	{
//	  "catalog":  [ ...components... ],
//	  "solution": { ...elements... },
//	  "view":     { "dx": 40, "node": { "width": 160 } }
//	}
//
// "architecture" may replace "solution". "view" is optional.
//
// # Errors
//
// Failures are reported as {"code", "message", "request_id"}. Invalid
// documents map to 400, unresolved references and cycles to 422, and
// everything else to 500.
//
// # Request IDs
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a UUID is generated.
package server
