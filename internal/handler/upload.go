package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/deppfellow/recruitly/internal/errs"
	"github.com/labstack/echo/v4"
)

// UploadField is the multipart field carrying uploaded files.
const UploadField = "file"

// formFile returns the uploaded file, or a 400 naming the missing field.
func formFile(c echo.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(UploadField)
	if err == nil {
		return fh, nil
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, errs.NewBadRequestError("Validation failed", true, nil,
			[]errs.FieldError{{Field: UploadField, Error: "is required"}}, nil)
	}
	return nil, errs.NewBadRequestError("Invalid multipart payload", false, nil, nil, nil)
}
