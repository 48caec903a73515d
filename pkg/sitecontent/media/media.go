// Package media defines the storage provider abstraction for uploaded
// media bytes. Implementations live in subpackages (fs, s3, memory) and
// are selected once at process start; callers never branch on which
// backend is behind the interface.
package media

import (
	"context"
	"io"
)

// Kind hints the resource type to backends that care about it.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// UploadParams describes where and how an upload should be stored.
type UploadParams struct {
	// Folder is a logical namespace path such as "secretspot/gallery/damas".
	Folder string
	// FileName is the original client filename, used as a naming hint.
	FileName string
	// Kind is the resource type of the payload.
	Kind Kind
}

// Stored is the result of a successful upload. Ref is an opaque
// backend-specific reference valid only for a later Delete call.
type Stored struct {
	URL string
	Ref string
}

// Store is the two-operation contract every media backend implements.
type Store interface {
	// Upload stores the bytes read from reader and returns the public URL
	// and the opaque deletion reference.
	Upload(ctx context.Context, reader io.Reader, params UploadParams) (*Stored, error)

	// Delete removes previously uploaded media by its reference. A missing
	// object is not an error.
	Delete(ctx context.Context, ref string) error
}
