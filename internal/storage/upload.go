package storage

import (
	"context"
	"mime/multipart"
)

// UploadMultipartFile uploads a multipart file to R2 and returns its public URL.
func (r *R2Client) UploadMultipartFile(
	ctx context.Context,
	key string,
	file *multipart.FileHeader,
) (string, error) {

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return r.Upload(ctx, key, f, file.Header.Get("Content-Type"))
}
