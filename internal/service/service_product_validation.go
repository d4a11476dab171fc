package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

// ProductValidationService is a ProductService decorator that rejects
// malformed input before it reaches the wrapped service.
type ProductValidationService struct {
	inner     ProductService
	validator validators.Validator
}

func NewProductValidationService(validator validators.Validator) ProductServiceWrapper {
	return &ProductValidationService{
		validator: validator,
	}
}

func (v *ProductValidationService) CreateProduct(ctx context.Context, ownerID string, fields models.ProductFields) (models.Product, error) {
	if err := v.validator.Validate(ctx, fields); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProduct(ctx, ownerID, fields)
}

func (v *ProductValidationService) ListProducts(ctx context.Context, ownerID string) ([]models.Product, error) {
	return v.inner.ListProducts(ctx, ownerID)
}

func (v *ProductValidationService) GetProduct(ctx context.Context, ownerID, productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, ErrProductNotFound
	}

	return v.inner.GetProduct(ctx, ownerID, productID)
}

func (v *ProductValidationService) UpdateProduct(ctx context.Context, ownerID, productID string, fields models.ProductFields) (models.Product, error) {
	if productID == "" {
		return models.Product{}, ErrProductNotFound
	}

	err := v.validator.Validate(ctx, fields, validators.FieldAnyUpdate, validators.FieldQuantity, validators.FieldPrice)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateProduct(ctx, ownerID, productID, fields)
}

func (v *ProductValidationService) DeleteProduct(ctx context.Context, ownerID, productID string) error {
	if productID == "" {
		return ErrProductNotFound
	}

	return v.inner.DeleteProduct(ctx, ownerID, productID)
}

func (v *ProductValidationService) Wrap(wrapped ProductService) ProductService {
	v.inner = wrapped
	return v
}
