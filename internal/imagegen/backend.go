// Package imagegen provides the external image-generation capability used
// for promotional images. The core pipeline only depends on the Backend
// interface; the Gemini implementation calls the REST API directly.
package imagegen

import "context"

// Backend generates an image from a prompt and returns its raw bytes.
// Implementations may fail; the pipeline degrades to an empty image path.
type Backend interface {
	Generate(ctx context.Context, prompt, size, quality string) ([]byte, error)
}
