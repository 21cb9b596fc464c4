package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey   ContextKey = "claims"
	UserIDKey   ContextKey = "user_id"
	RoleKey     ContextKey = "role"
	OwnerIDKey  ContextKey = "owner_id"
	TenantIDKey ContextKey = "tenant_id"
	TokenIDKey  ContextKey = "jti"
)

var (
	ErrNoClaimsInContext  = errors.New("no claims found in context")
	ErrNoUserIDInClaims   = errors.New("no user_id found in claims")
	ErrNoOwnerIDInClaims  = errors.New("no owner_id found in claims")
	ErrNoTenantIDInClaims = errors.New("no tenant_id found in claims")
	ErrInvalidClaimType   = errors.New("claim must be a string")
)

// Identity is the caller as described by its token claims.
type Identity struct {
	UserID   string
	Role     string
	OwnerID  string
	TenantID string
}

// Claims renders the identity as JWT claims without expiry fields.
func (i Identity) Claims() jwt.MapClaims {
	claims := jwt.MapClaims{
		string(UserIDKey): i.UserID,
		string(RoleKey):   i.Role,
	}
	if i.OwnerID != "" {
		claims[string(OwnerIDKey)] = i.OwnerID
	}
	if i.TenantID != "" {
		claims[string(TenantIDKey)] = i.TenantID
	}
	return claims
}

// WithIdentity stores the identity claims on ctx. Background jobs use it to act on behalf of an owner.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, ClaimsKey, identity.Claims())
}

func GetIdentityFromContext(c context.Context) (Identity, error) {
	claims, ok := c.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrNoClaimsInContext
	}
	userID, _ := claims[string(UserIDKey)].(string)
	role, _ := claims[string(RoleKey)].(string)
	ownerID, _ := claims[string(OwnerIDKey)].(string)
	tenantID, _ := claims[string(TenantIDKey)].(string)
	return Identity{UserID: userID, Role: role, OwnerID: ownerID, TenantID: tenantID}, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	return getClaimString(c, UserIDKey, ErrNoUserIDInClaims)
}

func GetOwnerIDFromContext(c context.Context) (string, error) {
	return getClaimString(c, OwnerIDKey, ErrNoOwnerIDInClaims)
}

func GetTenantIDFromContext(c context.Context) (string, error) {
	return getClaimString(c, TenantIDKey, ErrNoTenantIDInClaims)
}

func getClaimString(c context.Context, key ContextKey, missing error) (string, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return "", ErrNoClaimsInContext
	}

	value, exists := claims[string(key)]
	if !exists || value == nil {
		return "", missing
	}

	str, ok := value.(string)
	if !ok {
		return "", ErrInvalidClaimType
	}
	if str == "" {
		return "", missing
	}

	return str, nil
}
