package interfaces

import "context"

// IArtifactStore uploads generated document artifacts (PDF byte streams) to
// blob storage and returns a retrievable URL.

type IArtifactStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
}
