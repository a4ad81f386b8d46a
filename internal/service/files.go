package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/deppfellow/recruitly/internal/lib/storage"
	"github.com/gabriel-vasile/mimetype"
)

var (
	imageTypes  = []string{"image/jpeg", "image/png", "image/webp"}
	resumeTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
)

// storeUpload sniffs the file content, rejects types outside allowed and
// stores it under prefix. It returns the new object key.
func (d *Deps) storeUpload(ctx context.Context, fh *multipart.FileHeader, prefix string, allowed []string) (string, error) {
	if d.Files == nil {
		return "", errs.NewServiceUnavailableError("File uploads are not available")
	}
	if fh == nil {
		return "", errs.NewBadRequestError("A file is required", true, nil, nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if !allowedType(mtype, allowed) {
		return "", errs.NewBadRequestError(
			fmt.Sprintf("Unsupported file type %s", mtype.String()), true, nil,
			[]errs.FieldError{{Field: "file", Error: "has an unsupported type"}}, nil,
		)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	key := storage.NewKey(prefix, "upload"+mtype.Extension())
	if err := d.Files.Put(ctx, key, f, fh.Size, mtype.String()); err != nil {
		return "", err
	}
	return key, nil
}

func allowedType(mtype *mimetype.MIME, allowed []string) bool {
	for m := mtype; m != nil; m = m.Parent() {
		for _, a := range allowed {
			if m.Is(a) {
				return true
			}
		}
	}
	return false
}

// removeFiles deletes stored objects, logging failures.
func (d *Deps) removeFiles(ctx context.Context, keys ...string) {
	if d.Files == nil {
		return
	}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := d.Files.Delete(ctx, key); err != nil {
			d.log(ctx).Error().Err(err).Str("key", key).Msg("failed to delete stored file")
		}
	}
}

func (d *Deps) fileURL(key *string) string {
	if d.Files == nil || key == nil || *key == "" {
		return ""
	}
	return d.Files.URL(*key)
}
