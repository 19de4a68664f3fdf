// Package http provides the HTTP transport adapters over the conversion
// pipeline. The transform handler accepts a schedule as multipart form
// data, JSON with a base64 file field, or a raw body, and responds with
// the rendered workbook as base64 JSON or as a binary attachment.
package http
