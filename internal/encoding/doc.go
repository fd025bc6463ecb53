// Package encoding implements the variable-length sections of timeline blobs.
package encoding
