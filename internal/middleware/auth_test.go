package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type fakeRevocations struct {
	revoked map[string]bool
}

func (f *fakeRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

type fakeAccess struct {
	err     error
	ownerID string
}

func (f *fakeAccess) CheckOwnerAccess(ctx context.Context, ownerID string) error {
	f.ownerID = ownerID
	return f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAuth(access *fakeAccess, revoked ...string) (*AuthMiddleware, *utils.TokenManager) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	rev := &fakeRevocations{revoked: map[string]bool{}}
	for _, id := range revoked {
		rev.revoked[id] = true
	}
	if access == nil {
		access = &fakeAccess{}
	}
	return NewAuthMiddleware(tokens, rev, access, logger.NewNop()), tokens
}

func serve(handlers []gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	r.Any("/x", handlers...)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.GetString(string(utils.UserIDKey)),
		"owner_id": c.GetString(string(utils.OwnerIDKey)),
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	auth, _ := newTestAuth(nil)

	w := serve([]gin.HandlerFunc{auth.JWTAuth(), ok}, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	auth, _ := newTestAuth(nil)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	w := serve([]gin.HandlerFunc{auth.JWTAuth(), ok}, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidTokenSetsClaims(t *testing.T) {
	auth, tokens := newTestAuth(nil)
	issued, err := tokens.Issue(utils.Identity{UserID: "u1", Role: "owner", OwnerID: "o1"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)

	w := serve([]gin.HandlerFunc{auth.JWTAuth(), ok}, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","owner_id":"o1"}`, w.Body.String())
}

func TestJWTAuth_QueryTokenForGet(t *testing.T) {
	auth, tokens := newTestAuth(nil)
	issued, err := tokens.Issue(utils.Identity{UserID: "u1", Role: "tenant"})
	require.NoError(t, err)

	w := serve([]gin.HandlerFunc{auth.JWTAuth(), ok}, httptest.NewRequest(http.MethodGet, "/x?access_token="+issued.Token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_RevokedToken(t *testing.T) {
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	issued, err := tokens.Issue(utils.Identity{UserID: "u1", Role: "owner"})
	require.NoError(t, err)
	auth, _ := newTestAuth(nil, issued.ID)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)

	w := serve([]gin.HandlerFunc{auth.JWTAuth(), ok}, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		expected int
	}{
		{name: "admin allowed", role: domain.RoleAdmin, expected: http.StatusOK},
		{name: "owner allowed", role: domain.RoleOwner, expected: http.StatusOK},
		{name: "tenant forbidden", role: domain.RoleTenant, expected: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, tokens := newTestAuth(nil)
			issued, err := tokens.Issue(utils.Identity{UserID: "u1", Role: string(tt.role)})
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Authorization", "Bearer "+issued.Token)

			w := serve([]gin.HandlerFunc{auth.JWTAuth(), auth.RequireRole(domain.RoleAdmin, domain.RoleOwner), ok}, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	auth, _ := newTestAuth(nil)

	w := serve([]gin.HandlerFunc{auth.RequireRole(domain.RoleAdmin), ok}, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireOwnerAccess(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		err      error
		expected int
	}{
		{name: "active owner", role: domain.RoleOwner, expected: http.StatusOK},
		{name: "pending owner", role: domain.RoleOwner, err: service.ErrOwnerPending, expected: http.StatusForbidden},
		{name: "locked owner", role: domain.RoleOwner, err: service.ErrOwnerLocked, expected: http.StatusForbidden},
		{name: "no subscription", role: domain.RoleOwner, err: service.ErrPaymentRequired, expected: http.StatusPaymentRequired},
		{name: "tenant skips check", role: domain.RoleTenant, err: service.ErrPaymentRequired, expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := &fakeAccess{err: tt.err}
			auth, tokens := newTestAuth(access)
			issued, err := tokens.Issue(utils.Identity{UserID: "u1", Role: string(tt.role), OwnerID: "o1"})
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Authorization", "Bearer "+issued.Token)

			w := serve([]gin.HandlerFunc{auth.JWTAuth(), auth.RequireOwnerAccess(), ok}, req)

			assert.Equal(t, tt.expected, w.Code)
			if tt.role == domain.RoleOwner {
				assert.Equal(t, "o1", access.ownerID)
			}
		})
	}
}
