package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/pinvent/models"
)

// ProductValidator implements the Validator interface for ProductFields and
// uploaded ImageFile values.
//
// ProductFields default to the create rules (all fields required, no
// negative numbers). Updates pass FieldAnyUpdate, FieldQuantity and
// FieldPrice explicitly.
type ProductValidator struct {
	maxImageSize int64
}

// NewProductValidator constructs a ProductValidator accepting images of at
// most maxImageSize bytes.
func NewProductValidator(maxImageSize int64) Validator {
	return &ProductValidator{maxImageSize: maxImageSize}
}

func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProductFields:
		return v.validateProductFields(value, fields...)
	case *models.ProductFields:
		return v.validateProductFields(*value, fields...)

	case models.ImageFile:
		return v.validateImage(value, fields...)
	case *models.ImageFile:
		return v.validateImage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProductValidator) validateProductFields(p models.ProductFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldQuantity, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if blankPtr(p.Name) || blankPtr(p.Category) || blankPtr(p.Description) || p.Quantity == nil || p.Price == nil {
				return newValidationError(f, MsgFillAllFields)
			}
		case FieldQuantity:
			if p.Quantity != nil && *p.Quantity < 0 {
				return newValidationError(f, MsgNegativeQuantity)
			}
		case FieldPrice:
			if p.Price != nil && (math.IsNaN(*p.Price) || math.IsInf(*p.Price, 0)) {
				return newValidationError(f, MsgInvalidPrice)
			}
			if p.Price != nil && *p.Price < 0 {
				return newValidationError(f, MsgNegativePrice)
			}
		case FieldAnyUpdate:
			if blankPtr(p.Name) && blankPtr(p.Category) && blankPtr(p.Description) &&
				p.Quantity == nil && p.Price == nil && p.Image == nil {
				return newValidationError(f, MsgNoFieldsToUpdate)
			}
		default:
			return ErrUnknownField
		}
	}

	if p.Image != nil {
		return v.validateImage(*p.Image)
	}

	return nil
}

func (v *ProductValidator) validateImage(file models.ImageFile, fields ...string) error {
	return validateImageFile(file, v.maxImageSize, fields...)
}

func blankPtr(s *string) bool {
	return s == nil || isBlank(*s)
}
