package model

import "strings"

const (
	EntityName = "upload"

	// FilePrefix starts every generated upload name.
	FilePrefix = "impression"

	// FormOverheadBytes is the room left for form fields and multipart
	// boundaries on top of the file itself.
	FormOverheadBytes = 1 << 20
)

const (
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
	ContentTypeWebP = "image/webp"
	ContentTypeGIF  = "image/gif"
)

var extensions = map[string]string{
	ContentTypePNG:  "png",
	ContentTypeJPEG: "jpg",
	ContentTypeWebP: "webp",
	ContentTypeGIF:  "gif",
}

// AllowedContentTypes returns the accepted image types as a space separated
// list, the format of the mimetypes validation tag.
func AllowedContentTypes() string {
	return strings.Join([]string{ContentTypePNG, ContentTypeJPEG, ContentTypeWebP, ContentTypeGIF}, " ")
}

// Extension returns the file extension for an accepted content type.
func Extension(contentType string) (string, bool) {
	ext, ok := extensions[contentType]

	return ext, ok
}

// RequestLimit is the largest request body accepted for an upload form.
func RequestLimit(maxUploadMB int) int64 {
	return int64(maxUploadMB)<<20 + FormOverheadBytes
}
