package web

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"impressions/shared/constant"
	"impressions/shared/failure"
)

// parseForm accepts both urlencoded and multipart posts. The body is capped at
// limit bytes.
func parseForm(w http.ResponseWriter, r *http.Request, limit int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), "multipart/form-data") {
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return failure.FromBodyError(err)
		}

		return nil
	}

	if err := r.ParseForm(); err != nil {
		return failure.FromBodyError(err)
	}

	return nil
}

// formInt reads an integer field. A blank field is zero.
func formInt(r *http.Request, key string) (int, error) {
	value := strings.TrimSpace(r.PostForm.Get(key))
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(key + " must be a whole number")
	}

	return n, nil
}

// formBool reads a checkbox. Unchecked boxes are not submitted at all.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostForm.Get(key)) {
	case "on", "true", "1", "yes":
		return true
	}

	return false
}

// formFile returns the bytes of an optional file field. A missing or empty
// file returns nil data and no error.
func formFile(r *http.Request, key string) (data []byte, filename, contentType string, err error) {
	if r.MultipartForm == nil {
		return nil, "", "", nil
	}

	file, header, err := r.FormFile(key)
	if err != nil {
		if err == http.ErrMissingFile { //nolint:errorlint
			return nil, "", "", nil
		}

		return nil, "", "", failure.BadRequest(err)
	}
	defer file.Close()

	if header.Size == 0 {
		return nil, "", "", nil
	}

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", "", err //nolint:wrapcheck
	}

	return data, header.Filename, header.Header.Get(constant.RequestHeaderContentType), nil
}
