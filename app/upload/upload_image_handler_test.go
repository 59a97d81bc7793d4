package upload

import (
	"blessindo/pkg/httperror"
	"blessindo/pkg/storage"
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, field, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File[field][0]
}

func newDiskStore(t *testing.T) (*storage.ImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	disk, err := storage.NewDisk(dir)
	require.NoError(t, err)

	return storage.NewImageStore(disk, 5*1024*1024), dir
}

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *httperror.Error
	require.True(t, errors.As(err, &httpErr), "expected *httperror.Error, got %v", err)
	require.Equal(t, status, httpErr.Status)
	require.Equal(t, message, httpErr.Message)
}

func TestUploadProductImage(t *testing.T) {
	store, dir := newDiskStore(t)
	handler := NewUploadImageHandler(store, ProductImage)

	res, err := handler.Handle(context.Background(), &UploadImageRequest{
		File: fileHeader(t, "image", "photo.jpg", "image/jpeg", []byte("jpeg-bytes")),
	})
	require.NoError(t, err)

	url := (*res)["imageUrl"]
	require.True(t, strings.HasPrefix(url, "/uploads/product-"), url)
	require.True(t, strings.HasSuffix(url, ".jpg"), url)

	data, err := os.ReadFile(dir + "/" + strings.TrimPrefix(url, "/uploads/"))
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUploadClientLogoKey(t *testing.T) {
	store, _ := newDiskStore(t)

	res, err := NewUploadImageHandler(store, ClientLogo).Handle(context.Background(), &UploadImageRequest{
		File: fileHeader(t, "logo", "logo.gif", "image/gif", []byte("gif")),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix((*res)["logoUrl"], "/uploads/client-"))
	require.NotContains(t, *res, "imageUrl")
}

func TestUploadMissingFile(t *testing.T) {
	store, _ := newDiskStore(t)

	_, err := NewUploadImageHandler(store, ProductImage).Handle(context.Background(), &UploadImageRequest{})
	requireHTTPError(t, err, http.StatusBadRequest, "No image file provided")

	_, err = NewUploadImageHandler(store, ClientLogo).Handle(context.Background(), &UploadImageRequest{})
	requireHTTPError(t, err, http.StatusBadRequest, "No logo file provided")
}

func TestUploadRejectsWithoutPersisting(t *testing.T) {
	store, dir := newDiskStore(t)
	handler := NewUploadImageHandler(store, ProductImage)

	_, err := handler.Handle(context.Background(), &UploadImageRequest{
		File: fileHeader(t, "image", "doc.pdf", "application/pdf", []byte("%PDF")),
	})
	requireHTTPError(t, err, http.StatusBadRequest, MessageUnsupportedType)

	_, err = handler.Handle(context.Background(), &UploadImageRequest{
		File: fileHeader(t, "image", "big.png", "image/png", bytes.Repeat([]byte{1}, 5*1024*1024+1)),
	})
	requireHTTPError(t, err, http.StatusBadRequest, "File size too large. Maximum 5MB allowed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestTooLargeMessageFollowsConfiguredLimit(t *testing.T) {
	require.Equal(t, "File size too large. Maximum 5MB allowed", TooLargeMessage(5*1024*1024))
	require.Equal(t, "File size too large. Maximum 2MB allowed", TooLargeMessage(2<<20))
	require.Equal(t, "File size too large. Maximum 512KB allowed", TooLargeMessage(512<<10))
	require.Equal(t, "File size too large. Maximum 1000 bytes allowed", TooLargeMessage(1000))
}

func TestUploadRejectionUsesStoreLimit(t *testing.T) {
	disk, err := storage.NewDisk(t.TempDir())
	require.NoError(t, err)
	handler := NewUploadImageHandler(storage.NewImageStore(disk, 2<<20), ProductImage)

	_, err = handler.Handle(context.Background(), &UploadImageRequest{
		File: fileHeader(t, "image", "big.png", "image/png", bytes.Repeat([]byte{1}, 2<<20+1)),
	})
	requireHTTPError(t, err, http.StatusBadRequest, "File size too large. Maximum 2MB allowed")
}
