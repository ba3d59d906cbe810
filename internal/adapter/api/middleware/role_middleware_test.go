package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avion/internal/domain/entity"
	"avion/pkg/errors"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *stubUserRepo) Delete(ctx context.Context, id string) error         { return nil }

func (r *stubUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, uid string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func roleFixture() *RoleMiddleware {
	return NewRoleMiddleware(&stubUserRepo{users: map[string]*entity.User{
		"buyer-1": {ID: "buyer-1", Role: entity.RoleBuyer},
		"mgr-1":   {ID: "mgr-1", Role: entity.RoleManager},
		"admin-1": {ID: "admin-1", Role: entity.RoleAdmin},
	}})
}

func TestRequireRoleAnonymous(t *testing.T) {
	mw := roleFixture()

	err := invokeWithRole(t, mw.ManagerOnly(), "")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestManagerOnlyBlocksBuyer(t *testing.T) {
	mw := roleFixture()

	err := invokeWithRole(t, mw.ManagerOnly(), "buyer-1")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestManagerOnlyAllowsManagerAndAdmin(t *testing.T) {
	mw := roleFixture()

	assert.NoError(t, invokeWithRole(t, mw.ManagerOnly(), "mgr-1"))
	assert.NoError(t, invokeWithRole(t, mw.ManagerOnly(), "admin-1"))
}

func TestAdminOnlyBlocksManager(t *testing.T) {
	mw := roleFixture()

	err := invokeWithRole(t, mw.AdminOnly(), "mgr-1")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	assert.NoError(t, invokeWithRole(t, mw.AdminOnly(), "admin-1"))
}

func TestRequireRoleUnknownUser(t *testing.T) {
	mw := roleFixture()

	err := invokeWithRole(t, mw.ManagerOnly(), "ghost")
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
