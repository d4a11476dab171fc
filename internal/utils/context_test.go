package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "user", UserCtxKey.String())
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "user-1")

	id, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", id)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	id, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), "user-1")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestWithUser_RoundTrip(t *testing.T) {
	user := &models.User{ID: "user-7", Email: "a@b.co"}
	ctx := WithUser(context.Background(), user)

	id, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-7", id)

	got, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestGetUserFromContext_Missing(t *testing.T) {
	got, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)
	assert.Nil(t, got)
}
