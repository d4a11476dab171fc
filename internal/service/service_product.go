package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
)

// productService implements ProductService on top of a ProductRepository.
// Every read and write of a single product goes through ensureOwner.
type productService struct {
	productRepository store.ProductRepository
	uploader          adapter.ImageUploader
	idGenerator       *utils.UUIDGenerator
	now               func() time.Time

	logger *logger.Logger
}

// NewProductService returns the undecorated ProductService. Input validation is
// added by wrapping it with NewProductValidationService.
func NewProductService(productRepository store.ProductRepository, uploader adapter.ImageUploader, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		uploader:          uploader,
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (p *productService) CreateProduct(ctx context.Context, ownerID string, fields models.ProductFields) (models.Product, error) {
	log := logger.FromContext(ctx)

	now := p.now().UTC()
	product := models.Product{
		ID:        p.idGenerator.Generate(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	mergeProductFields(&product, fields)

	product.SKU = strings.TrimSpace(deref(fields.SKU))
	if product.SKU == "" {
		product.SKU = p.idGenerator.SKU()
	}

	if fields.Image != nil {
		image, err := p.upload(ctx, *fields.Image)
		if err != nil {
			return models.Product{}, err
		}
		product.Image = image
	}

	created, err := p.productRepository.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, store.ErrProductAlreadyExists) {
			return models.Product{}, ErrProductAlreadyExists
		}
		log.Err(err).Str("func", "*productService.CreateProduct").Msg("error creating product")
		return models.Product{}, fmt.Errorf("error creating product: %w", err)
	}

	log.Info().Str("func", "*productService.CreateProduct").Str("product_id", created.ID).Msg("product created")
	return created, nil
}

func (p *productService) ListProducts(ctx context.Context, ownerID string) ([]models.Product, error) {
	products, err := p.productRepository.ListProductsByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.ListProducts").Msg("error listing products")
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	return products, nil
}

func (p *productService) GetProduct(ctx context.Context, ownerID, productID string) (models.Product, error) {
	return p.ownedProduct(ctx, ownerID, productID)
}

// UpdateProduct merges the provided fields into the stored product. The SKU
// never changes after creation and the image is replaced only when a new
// file is supplied.
func (p *productService) UpdateProduct(ctx context.Context, ownerID, productID string, fields models.ProductFields) (models.Product, error) {
	log := logger.FromContext(ctx)

	product, err := p.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return models.Product{}, err
	}

	mergeProductFields(&product, fields)

	if fields.Image != nil {
		image, err := p.upload(ctx, *fields.Image)
		if err != nil {
			return models.Product{}, err
		}
		product.Image = image
	}
	product.UpdatedAt = p.now().UTC()

	updated, err := p.productRepository.UpdateProduct(ctx, product)
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return models.Product{}, ErrProductNotFound
	case errors.Is(err, store.ErrProductAlreadyExists):
		return models.Product{}, ErrProductAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*productService.UpdateProduct").Msg("error updating product")
		return models.Product{}, fmt.Errorf("error updating product: %w", err)
	}

	return updated, nil
}

func (p *productService) DeleteProduct(ctx context.Context, ownerID, productID string) error {
	if _, err := p.ownedProduct(ctx, ownerID, productID); err != nil {
		return err
	}

	err := p.productRepository.DeleteProduct(ctx, ownerID, productID)
	if errors.Is(err, store.ErrProductNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("error deleting product: %w", err)
	}

	return nil
}

func (p *productService) ownedProduct(ctx context.Context, ownerID, productID string) (models.Product, error) {
	product, err := p.productRepository.FindProductByID(ctx, productID)
	if errors.Is(err, store.ErrProductNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.ownedProduct").Msg("error finding product")
		return models.Product{}, fmt.Errorf("error finding product: %w", err)
	}

	if err = ensureOwner(product, ownerID); err != nil {
		logger.FromContext(ctx).Warn().Str("func", "*productService.ownedProduct").
			Str("product_id", productID).Str("user_id", ownerID).Msg("access to foreign product")
		return models.Product{}, err
	}

	return product, nil
}

func (p *productService) upload(ctx context.Context, file models.ImageFile) (models.Image, error) {
	image, err := p.uploader.Upload(ctx, file)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.upload").Msg("image upload failed")
		return models.Image{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	return image, nil
}

// ensureOwner rejects access by anyone but the product owner. A foreign
// product is reported exactly like a missing one.
func ensureOwner(product models.Product, ownerID string) error {
	if ownerID == "" || product.OwnerID != ownerID {
		return ErrProductNotFound
	}
	return nil
}

// mergeProductFields copies every provided, non-blank value into product.
// SKU and image are handled by the callers.
func mergeProductFields(product *models.Product, fields models.ProductFields) {
	if v := strings.TrimSpace(deref(fields.Name)); v != "" {
		product.Name = v
	}
	if v := strings.TrimSpace(deref(fields.Category)); v != "" {
		product.Category = v
	}
	if v := strings.TrimSpace(deref(fields.Description)); v != "" {
		product.Description = v
	}
	if fields.Quantity != nil {
		product.Quantity = *fields.Quantity
	}
	if fields.Price != nil {
		product.Price = *fields.Price
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
