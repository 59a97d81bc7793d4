package upload

import (
	"blessindo/pkg/httperror"
	"blessindo/pkg/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"go.uber.org/zap"
)

const MessageUnsupportedType = "Only image files are allowed"

// TooLargeMessage is the rejection shown for files above maxBytes.
func TooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("File size too large. Maximum %s allowed", humanSize(maxBytes))
}

func humanSize(n int64) string {
	switch {
	case n > 0 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n > 0 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}

type ImageSaver interface {
	Save(prefix, originalName, contentType string, data []byte) (string, error)
	Validate(contentType string, size int64) error
	MaxBytes() int64
}

// Target describes one upload endpoint: the multipart field it reads, the
// file name prefix, and the response key carrying the public URL.
type Target struct {
	Field          string
	Prefix         string
	ResponseKey    string
	MissingMessage string
}

var (
	ProductImage = Target{Field: "image", Prefix: "product", ResponseKey: "imageUrl", MissingMessage: "No image file provided"}
	ClientLogo   = Target{Field: "logo", Prefix: "client", ResponseKey: "logoUrl", MissingMessage: "No logo file provided"}
)

type UploadImageHandler struct {
	images ImageSaver
	target Target
}

func NewUploadImageHandler(images ImageSaver, target Target) *UploadImageHandler {
	return &UploadImageHandler{
		images: images,
		target: target,
	}
}

func (h UploadImageHandler) Field() string {
	return h.target.Field
}

type UploadImageRequest struct {
	File *multipart.FileHeader
}

type UploadImageResponse = map[string]string

func (h UploadImageHandler) Handle(_ context.Context, req *UploadImageRequest) (*UploadImageResponse, error) {
	if req.File == nil {
		return nil, httperror.BadRequest("upload.missing_file", h.target.MissingMessage, nil)
	}

	contentType := req.File.Header.Get("Content-Type")
	if err := h.images.Validate(contentType, req.File.Size); err != nil {
		return nil, h.rejection(err)
	}

	data, err := readFile(req.File)
	if err != nil {
		return nil, httperror.InternalServerError("upload.file_read_error", "Failed to read uploaded file", err.Error())
	}

	url, err := h.images.Save(h.target.Prefix, req.File.Filename, contentType, data)
	if err != nil {
		if rejected := h.rejection(err); rejected.Status < 500 {
			return nil, rejected
		}
		return nil, httperror.InternalServerError(
			"upload.store_failed",
			fmt.Sprintf("Failed to upload %s", h.target.Field),
			err.Error(),
		)
	}

	zap.L().Info("Stored uploaded image", zap.String("url", url), zap.Int("bytes", len(data)))

	return &UploadImageResponse{h.target.ResponseKey: url}, nil
}

func (h UploadImageHandler) rejection(err error) *httperror.Error {
	switch {
	case errors.Is(err, storage.ErrUnsupportedType):
		return httperror.BadRequest("upload.invalid_content_type", MessageUnsupportedType, err.Error())
	case errors.Is(err, storage.ErrTooLarge):
		return httperror.BadRequest("upload.file_too_large", TooLargeMessage(h.images.MaxBytes()), err.Error())
	default:
		return httperror.InternalServerError("upload.failed", "Failed to upload file", err.Error())
	}
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
