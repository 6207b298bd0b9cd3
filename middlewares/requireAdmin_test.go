package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func adminTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/order", nil)
	return ctx, w
}

func TestRequireAdmin_AllowsAdminRole(t *testing.T) {
	ctx, _ := adminTestContext(t)
	ctx.Set("user", jwt.MapClaims{"role": "admin"})

	RequireAdmin()(ctx)

	assert.False(t, ctx.IsAborted())
}

func TestRequireAdmin_ForbidsNonAdminRole(t *testing.T) {
	ctx, w := adminTestContext(t)
	ctx.Set("user", jwt.MapClaims{"role": "user"})

	RequireAdmin()(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RejectsMissingClaims(t *testing.T) {
	ctx, w := adminTestContext(t)

	RequireAdmin()(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_RejectsUnexpectedClaimsType(t *testing.T) {
	ctx, w := adminTestContext(t)
	ctx.Set("user", "not-claims")

	RequireAdmin()(ctx)

	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
