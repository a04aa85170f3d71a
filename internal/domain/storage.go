package domain

import "context"

// ObjectStorage is the port to the remote object store holding uploaded
// resource binaries.
type ObjectStorage interface {
	// Put uploads the file at localPath under objectKey and returns the
	// public URL.
	Put(ctx context.Context, objectKey, localPath, contentType string) (string, error)

	// Delete removes the object stored under objectKey. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, objectKey string) error
}
