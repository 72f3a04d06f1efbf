package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
)

// Upload size caps per endpoint.
const (
	maxPostImageBytes    = 10 << 20
	maxProfileImageBytes = 5 << 20
	maxUploadBytes       = 100 << 20
)

const requestTimeout = 30 * time.Second

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
}

// imageFromForm pulls the named multipart file, enforcing the size cap and
// rejecting anything that does not sniff as an image. Returns (nil, nil) when
// the request carries no file, so callers can treat the upload as optional.
// The caller closes the returned file.
func imageFromForm(c *gin.Context, field string, maxBytes int64) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.Validation, "failed to read uploaded file", err)
	}

	if fh.Size > maxBytes {
		return nil, apperr.New(apperr.Validation, fmt.Sprintf("file too large, limit is %d MB", maxBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.Unknown, "failed to open uploaded file", err)
	}

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, apperr.Wrap(apperr.Validation, "failed to read uploaded file", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		f.Close()
		return nil, apperr.New(apperr.Validation, "only image files are allowed")
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, apperr.Wrap(apperr.Unknown, "failed to rewind uploaded file", err)
	}
	return f, nil
}

// formString reports the form field value and whether the field was present,
// distinguishing "clear this field" from "leave it alone" on partial updates.
func formString(c *gin.Context, field string) (string, bool) {
	return c.GetPostForm(field)
}
