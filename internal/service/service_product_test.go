package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/mock"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const otherUserID = "0194f1c2-7a10-7000-8000-000000000002"

func newProducts(t *testing.T) (service.ProductService, *mock.MockProductRepository, *mock.MockImageUploader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)
	uploader := mock.NewMockImageUploader(ctrl)

	svc := service.NewProductValidationService(validators.NewProductValidator(testMaxUpload)).
		Wrap(service.NewProductService(repo, uploader, logger.Nop()))

	return svc, repo, uploader
}

func ptr[T any](v T) *T { return &v }

func fullFields() models.ProductFields {
	return models.ProductFields{
		Name:        ptr("Laptop"),
		Category:    ptr("Electronics"),
		Quantity:    ptr(int64(3)),
		Price:       ptr(999.5),
		Description: ptr("14 inch"),
	}
}

func ownedProduct() models.Product {
	now := time.Now().UTC()
	return models.Product{
		ID:          "product-1",
		OwnerID:     testUserID,
		Name:        "Laptop",
		SKU:         "SKU-ABCDEF12",
		Category:    "Electronics",
		Quantity:    3,
		Price:       999.5,
		Description: "14 inch",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ---------------------------------------------------------------------------
// CreateProduct
// ---------------------------------------------------------------------------

// TestCreateProduct_DefaultsSKU verifies that a missing sku is replaced by a
// generated one instead of a constant that would collide on the unique index.
func TestCreateProduct_DefaultsSKU(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	var skus []string
	repo.EXPECT().CreateProduct(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, testUserID, p.OwnerID)
			assert.NotEmpty(t, p.ID)
			assert.True(t, strings.HasPrefix(p.SKU, "SKU-"))
			skus = append(skus, p.SKU)
			return p, nil
		})

	_, err := svc.CreateProduct(ctx, testUserID, fullFields())
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, testUserID, fullFields())
	require.NoError(t, err)

	assert.NotEqual(t, skus[0], skus[1])
}

func TestCreateProduct_WithImageAndSKU(t *testing.T) {
	svc, repo, uploader := newProducts(t)
	ctx := context.Background()

	fields := fullFields()
	fields.SKU = ptr("LAP-01")
	fields.Image = &models.ImageFile{Name: "laptop.png", ContentType: "image/png", Size: 1500, Data: []byte("png")}
	image := models.Image{Name: "laptop.png", URL: "https://cdn.example.com/laptop.png", Type: "image/png", Size: "1.5 KB"}

	gomock.InOrder(
		uploader.EXPECT().Upload(ctx, *fields.Image).Return(image, nil),
		repo.EXPECT().CreateProduct(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Product) (models.Product, error) {
				assert.Equal(t, "LAP-01", p.SKU)
				assert.Equal(t, image, p.Image)
				return p, nil
			}),
	)

	product, err := svc.CreateProduct(ctx, testUserID, fields)

	require.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)
	assert.Equal(t, int64(3), product.Quantity)
}

func TestCreateProduct_MissingFields(t *testing.T) {
	svc, _, _ := newProducts(t)

	fields := fullFields()
	fields.Category = nil

	_, err := svc.CreateProduct(context.Background(), testUserID, fields)

	require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	msg, _ := validators.Message(err)
	assert.Equal(t, validators.MsgFillAllFields, msg)
}

func TestCreateProduct_UploadFails(t *testing.T) {
	svc, _, uploader := newProducts(t)
	ctx := context.Background()

	fields := fullFields()
	fields.Image = &models.ImageFile{Name: "a.png", ContentType: "image/png", Size: 10, Data: []byte("x")}
	uploader.EXPECT().Upload(ctx, gomock.Any()).Return(models.Image{}, errors.New("bad gateway"))

	_, err := svc.CreateProduct(ctx, testUserID, fields)

	require.ErrorIs(t, err, service.ErrImageUploadFailed)
}

func TestCreateProduct_Duplicate(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	repo.EXPECT().CreateProduct(ctx, gomock.Any()).Return(models.Product{}, store.ErrProductAlreadyExists)

	_, err := svc.CreateProduct(ctx, testUserID, fullFields())

	require.ErrorIs(t, err, service.ErrProductAlreadyExists)
	assert.ErrorIs(t, err, service.ErrConflict)
}

// ---------------------------------------------------------------------------
// ListProducts / GetProduct
// ---------------------------------------------------------------------------

func TestListProducts(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	repo.EXPECT().ListProductsByOwner(ctx, testUserID).Return([]models.Product{ownedProduct()}, nil)

	products, err := svc.ListProducts(ctx, testUserID)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

// TestGetProduct_ForeignAndMissingLookAlike verifies that a product owned by
// someone else is indistinguishable from one that does not exist.
func TestGetProduct_ForeignAndMissingLookAlike(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := newProducts(t)
		repo.EXPECT().FindProductByID(ctx, "product-1").Return(models.Product{}, store.ErrProductNotFound)

		_, err := svc.GetProduct(ctx, testUserID, "product-1")
		assert.Equal(t, service.ErrProductNotFound, err)
	})

	t.Run("foreign", func(t *testing.T) {
		svc, repo, _ := newProducts(t)
		repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)

		_, err := svc.GetProduct(ctx, otherUserID, "product-1")
		assert.Equal(t, service.ErrProductNotFound, err)
	})
}

func TestGetProduct_Owner(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)

	product, err := svc.GetProduct(ctx, testUserID, "product-1")

	require.NoError(t, err)
	assert.Equal(t, "product-1", product.ID)
}

// ---------------------------------------------------------------------------
// UpdateProduct
// ---------------------------------------------------------------------------

// TestUpdateProduct_MergesProvidedFields verifies that only provided values
// change, that the sku stays as created and that the image is kept when no
// new file is sent.
func TestUpdateProduct_MergesProvidedFields(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()
	stored := ownedProduct()
	stored.Image = models.Image{URL: "https://cdn.example.com/old.png"}

	repo.EXPECT().FindProductByID(ctx, "product-1").Return(stored, nil)
	repo.EXPECT().UpdateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, "Gaming laptop", p.Name)
			assert.Equal(t, "Electronics", p.Category)
			assert.Equal(t, int64(0), p.Quantity)
			assert.Equal(t, "SKU-ABCDEF12", p.SKU)
			assert.Equal(t, stored.Image, p.Image)
			assert.True(t, p.UpdatedAt.After(stored.UpdatedAt) || p.UpdatedAt.Equal(stored.UpdatedAt))
			return p, nil
		})

	_, err := svc.UpdateProduct(ctx, testUserID, "product-1", models.ProductFields{
		Name:     ptr("Gaming laptop"),
		Category: ptr("  "),
		Quantity: ptr(int64(0)),
		SKU:      ptr("NEW-SKU"),
	})

	require.NoError(t, err)
}

func TestUpdateProduct_ReplacesImage(t *testing.T) {
	svc, repo, uploader := newProducts(t)
	ctx := context.Background()
	file := models.ImageFile{Name: "new.jpg", ContentType: "image/jpeg", Size: 2000, Data: []byte("jpg")}
	image := models.Image{Name: "new.jpg", URL: "https://cdn.example.com/new.jpg", Type: "image/jpeg", Size: "2 KB"}

	repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)
	uploader.EXPECT().Upload(ctx, file).Return(image, nil)
	repo.EXPECT().UpdateProduct(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Product) (models.Product, error) {
			assert.Equal(t, image, p.Image)
			return p, nil
		})

	updated, err := svc.UpdateProduct(ctx, testUserID, "product-1", models.ProductFields{Image: &file})

	require.NoError(t, err)
	assert.Equal(t, image.URL, updated.Image.URL)
}

func TestUpdateProduct_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to update", func(t *testing.T) {
		svc, _, _ := newProducts(t)
		_, err := svc.UpdateProduct(ctx, testUserID, "product-1", models.ProductFields{})
		require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	})

	t.Run("negative price", func(t *testing.T) {
		svc, _, _ := newProducts(t)
		_, err := svc.UpdateProduct(ctx, testUserID, "product-1", models.ProductFields{Price: ptr(-1.0)})
		require.ErrorIs(t, err, service.ErrInvalidDataProvided)
	})

	t.Run("foreign product", func(t *testing.T) {
		svc, repo, _ := newProducts(t)
		repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)

		_, err := svc.UpdateProduct(ctx, otherUserID, "product-1", models.ProductFields{Name: ptr("mine now")})
		require.ErrorIs(t, err, service.ErrProductNotFound)
	})

	t.Run("name taken", func(t *testing.T) {
		svc, repo, _ := newProducts(t)
		repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)
		repo.EXPECT().UpdateProduct(ctx, gomock.Any()).Return(models.Product{}, store.ErrProductAlreadyExists)

		_, err := svc.UpdateProduct(ctx, testUserID, "product-1", models.ProductFields{Name: ptr("Phone")})
		require.ErrorIs(t, err, service.ErrProductAlreadyExists)
	})
}

// ---------------------------------------------------------------------------
// DeleteProduct
// ---------------------------------------------------------------------------

func TestDeleteProduct_Owner(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)
	repo.EXPECT().DeleteProduct(ctx, testUserID, "product-1").Return(nil)

	require.NoError(t, svc.DeleteProduct(ctx, testUserID, "product-1"))
}

func TestDeleteProduct_ForeignIsNotDeleted(t *testing.T) {
	svc, repo, _ := newProducts(t)
	ctx := context.Background()

	repo.EXPECT().FindProductByID(ctx, "product-1").Return(ownedProduct(), nil)

	err := svc.DeleteProduct(ctx, otherUserID, "product-1")

	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestDeleteProduct_EmptyID(t *testing.T) {
	svc, _, _ := newProducts(t)

	err := svc.DeleteProduct(context.Background(), testUserID, "")

	require.ErrorIs(t, err, service.ErrProductNotFound)
}
