// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/models"
)

// productRepository is the SQL-backed implementation of [ProductRepository]
// over the "products" table.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository].
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct inserts p as is. A unique violation on name or sku yields
// [ErrProductAlreadyExists].
func (r *productRepository) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.createProductQuery(p)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Product{}, ErrProductAlreadyExists
		}
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return p, nil
}

// ListProductsByOwner returns the owner's products, newest first. No rows is
// an empty, non-nil slice.
func (r *productRepository) ListProductsByOwner(ctx context.Context, ownerID string) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listProductsByOwnerQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProductsByOwner").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProductsByOwner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.ListProductsByOwner").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProductsByOwner").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, nil
}

// FindProductByID returns the product regardless of its owner. Callers run
// the ownership check.
func (r *productRepository) FindProductByID(ctx context.Context, productID string) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findProductQuery(productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error scanning product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// UpdateProduct writes the mutable columns of p where both id and owner
// match.
func (r *productRepository) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateProductQuery(p)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error building query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Product{}, ErrProductAlreadyExists
		}
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("error updating product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = checkProductAffected(res); err != nil {
		return models.Product{}, err
	}

	return p, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, ownerID, productID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteProductQuery(ownerID, productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkProductAffected(res)
}

func checkProductAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
