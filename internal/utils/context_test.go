package utils

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithIdentity_RoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "u1", Role: "tenant", OwnerID: "o1", TenantID: "t1"})

	identity, err := GetIdentityFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
	assert.Equal(t, "tenant", identity.Role)

	ownerID, err := GetOwnerIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "o1", ownerID)

	tenantID, err := GetTenantIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", tenantID)
}

func TestGetOwnerIDFromContext_Errors(t *testing.T) {
	_, err := GetOwnerIDFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoClaimsInContext)

	ctx := WithIdentity(context.Background(), Identity{UserID: "admin", Role: "admin"})
	_, err = GetOwnerIDFromContext(ctx)
	assert.ErrorIs(t, err, ErrNoOwnerIDInClaims)

	ctx = context.WithValue(context.Background(), ClaimsKey, jwt.MapClaims{"owner_id": 42})
	_, err = GetOwnerIDFromContext(ctx)
	assert.ErrorIs(t, err, ErrInvalidClaimType)
}
