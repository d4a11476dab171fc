package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: ForeignKeyViolation},
		{name: "other pg code", err: pgError(pgerrcode.SerializationFailure), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	liteErr := func(ext sqlite3.ErrNoExtended) error {
		return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
	}

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "unique", err: liteErr(sqlite3.ErrConstraintUnique), want: UniqueViolation},
		{name: "primary key", err: liteErr(sqlite3.ErrConstraintPrimaryKey), want: UniqueViolation},
		{name: "foreign key", err: liteErr(sqlite3.ErrConstraintForeignKey), want: ForeignKeyViolation},
		{name: "not null", err: liteErr(sqlite3.ErrConstraintNotNull), want: Unclassified},
		{name: "pg error is not sqlite", err: pgError(pgerrcode.UniqueViolation), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
