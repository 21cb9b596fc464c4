package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	issued, err := m.Issue(Identity{UserID: "u1", Role: "owner", OwnerID: "o1"})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Parse(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "owner", claims["role"])
	assert.Equal(t, "o1", claims["owner_id"])
	assert.Equal(t, issued.ID, claims["jti"])
	assert.InDelta(t, time.Hour.Seconds(), RemainingTTL(claims).Seconds(), 5)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issued, err := NewTokenManager("secret", time.Hour).Issue(Identity{UserID: "u1", Role: "owner"})
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	issued, err := NewTokenManager("secret", -time.Minute).Issue(Identity{UserID: "u1", Role: "owner"})
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).Parse(issued.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
