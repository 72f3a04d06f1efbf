package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
)

// CloudinaryStore implements AssetStore on top of the Cloudinary upload API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore builds a store from a cloudinary:// connection URL.
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary configuration: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, opts UploadOptions) (MediaRef, error) {
	params := uploader.UploadParams{
		Folder:         opts.Folder,
		PublicID:       opts.PublicIDPrefix + uuid.NewString(),
		Transformation: opts.Transformation,
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return MediaRef{}, apperr.Wrap(apperr.Store, "failed to upload image", err)
	}
	// Cloudinary reports rejections in the response body with a nil error.
	if result.Error.Message != "" {
		return MediaRef{}, apperr.New(apperr.Store, "failed to upload image: "+result.Error.Message)
	}

	return MediaRef{
		URL:       result.URL,
		SecureURL: result.SecureURL,
		PublicID:  result.PublicID,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return apperr.Wrap(apperr.Store, "failed to delete image "+publicID, err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return apperr.New(apperr.Store, "failed to delete image "+publicID+": "+result.Result)
	}
	return nil
}
