package validators

import (
	"slices"

	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
)

// AllowedImageTypes lists the accepted MIME types of uploaded images.
var AllowedImageTypes = []string{"image/png", "image/jpg", "image/jpeg"}

// validateImageFile checks an upload against the accepted types and, when
// maxSize is positive, the size limit.
func validateImageFile(file models.ImageFile, maxSize int64, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldImageType, FieldImageSize}
	}

	for _, f := range fields {
		switch f {
		case FieldImageType:
			if !slices.Contains(AllowedImageTypes, file.ContentType) {
				return newValidationError(f, MsgUnsupportedFormat)
			}
		case FieldImageSize:
			if maxSize > 0 && file.Size > maxSize {
				return newValidationError(f, MsgFileSizeExceeded+utils.FormatFileSize(maxSize))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
