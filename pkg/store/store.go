// Package store defines the blob store and the parameter store the
// functions read from and write to, with S3, SSM and in-memory
// implementations.
package store

import "context"

// Object is a stored blob.
type Object struct {
	Body        []byte
	ContentType string
}

// BlobStore gets objects by key.
type BlobStore interface {
	// GetObject returns the object stored under key in bucket.
	GetObject(ctx context.Context, bucket, key string) (Object, error)
}

// Parameter is a write to the parameter store.
type Parameter struct {
	Name  string
	Value string
	// Secure stores the value encrypted.
	Secure bool
	// Overwrite allows replacing an existing value.
	Overwrite bool
}

// ParameterStore gets and puts scalar parameters.
//
// There is no compare-and-swap: a read followed by a put is not atomic,
// and concurrent read-modify-write cycles can lose updates.
type ParameterStore interface {
	// GetParameter returns the value of name, decrypted if decrypt is true.
	GetParameter(ctx context.Context, name string, decrypt bool) (string, error)
	// PutParameter writes p.
	PutParameter(ctx context.Context, p Parameter) error
}
