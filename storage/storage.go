// Package storage abstracts the remote media host. Entities keep a MediaRef
// next to their record; the store is the only component that talks to
// Cloudinary.
package storage

import (
	"context"
	"io"
	"strings"
)

// MediaRef describes an uploaded asset. PublicID is the store's handle for
// later deletion and is persisted with the owning entity.
type MediaRef struct {
	URL       string
	SecureURL string
	PublicID  string
}

// UploadOptions selects the remote folder, the public ID prefix and the eager
// transformation applied by the store.
type UploadOptions struct {
	Folder         string
	PublicIDPrefix string
	Transformation string
}

// PostImageOptions and ProfileImageOptions mirror the upload presets the
// frontend has always depended on.
var (
	PostImageOptions = UploadOptions{
		Folder:         "blog_images",
		PublicIDPrefix: "blog_image_",
		Transformation: "c_limit,w_1000,h_1000",
	}
	ProfileImageOptions = UploadOptions{
		Folder:         "profile_photos",
		PublicIDPrefix: "profile_",
		Transformation: "c_fill,w_500,h_500,g_face",
	}
)

// AssetStore is the port the mutation services depend on. Upload failures are
// fatal to the calling operation; Delete is only ever called best-effort.
type AssetStore interface {
	Upload(ctx context.Context, file io.Reader, opts UploadOptions) (MediaRef, error)
	Delete(ctx context.Context, publicID string) error
}

// PublicIDFromURL recovers a public ID from an asset URL by taking the last
// path segment and stripping its extension. This is the legacy convention for
// records that predate stored public IDs; it knows nothing about folders and
// breaks silently if the store ever changes its URL shape.
func PublicIDFromURL(url string) string {
	if url == "" {
		return ""
	}
	segment := url
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	if i := strings.Index(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	return segment
}
