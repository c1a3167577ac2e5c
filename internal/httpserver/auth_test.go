package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionbrand/storefront/internal/models"
)

func TestRegisterAndMe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":       "Ravi Traders",
		"phone":      "9876500001",
		"shop_name":  "Ravi Fashion House",
		"address":    "12 Market Road",
		"pincode":    "400001",
		"gst_number": "27AAPFU0939F1ZV",
		"password":   "Secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user models.User
	decodeBody(t, rec, &user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "9876500001", user.Phone)
	require.NotNil(t, user.GSTNumber)
	assert.Equal(t, "27AAPFU0939F1ZV", *user.GSTNumber)

	// password hash must never leave the server
	assert.NotContains(t, rec.Body.String(), "password_hash")

	cookie := sessionCookie(t, rec)
	rec = env.do(http.MethodGet, "/api/v1/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var me models.User
	decodeBody(t, rec, &me)
	assert.Equal(t, user.ID, me.ID)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	env := newTestEnv(t)
	env.registerDealer("9876500002")

	rec := env.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":      "Other Shop",
		"phone":     "9876500002",
		"shop_name": "Other",
		"address":   "1 Side Street",
		"pincode":   "400002",
		"password":  "Secret123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":  "No Shop",
		"phone": "9876500003",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.registerDealer("9876500004")

	rec := env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"phone":    "9876500004",
		"password": "WrongPass",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"phone":    "9876500004",
		"password": "Secret123",
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginUnknownPhone(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"phone":    "0000000000",
		"password": "Secret123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer("9876500005")

	rec := env.do(http.MethodPost, "/api/v1/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	expired := sessionCookie(t, rec)
	assert.Empty(t, expired.Value)
	assert.True(t, expired.Expires.Before(time.Now()))
}

func TestAdminCreateRequiresSecret(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/admin/create", map[string]string{
		"name":     "Intruder",
		"email":    "bad@example.com",
		"password": "Secret123",
		"secret":   "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDealerSessionRejectedOnAdminRoutes(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer("9876500006")

	rec := env.do(http.MethodGet, "/api/v1/admin/orders", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
