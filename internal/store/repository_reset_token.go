package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/models"
)

type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] over the
// "reset_tokens" table.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *resetTokenRepository) ReplaceForUser(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.db.deleteUserResetTokensQuery(token.UserID)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceForUser").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.createResetTokenQuery(token)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceForUser").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.ReplaceForUser").Msg("error replacing reset token")
		return err
	}

	log.Debug().Str("func", "*resetTokenRepository.ReplaceForUser").Str("user_id", token.UserID).Msg("reset token replaced")
	return nil
}

func (r *resetTokenRepository) FindValidByHash(ctx context.Context, tokenHash string, now time.Time) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findValidResetTokenQuery(tokenHash, now)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.FindValidByHash").Msg("error building query")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	token, err := scanResetToken(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*resetTokenRepository.FindValidByHash").Msg("error scanning reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

func (r *resetTokenRepository) Consume(ctx context.Context, tokenID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteResetTokenQuery(tokenID)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Consume").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.Consume").Msg("error deleting reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	// a concurrent reset already consumed it
	if affected != 1 {
		return ErrResetTokenNotFound
	}

	return nil
}

func (r *resetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteExpiredResetTokensQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteExpired").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resetTokenRepository.DeleteExpired").Msg("error deleting expired reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
