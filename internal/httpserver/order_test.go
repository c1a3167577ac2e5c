package httpserver

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/whatsapp"
)

func TestPlaceOrderConvertsCart(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(30))
	_, designs, colors := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, &colors[0].ID, 2)
	addToCart(env, cookie, designs[1].ID, nil, 1)

	rec := env.do(http.MethodPost, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed struct {
		Order       models.Order `json:"order"`
		Message     string       `json:"message"`
		WhatsAppURL string       `json:"whatsapp_url"`
	}
	decodeBody(t, rec, &placed)

	assert.Equal(t, models.OrderStatusPending, placed.Order.Status)
	require.Len(t, placed.Order.Items, 2)
	assert.NotEmpty(t, placed.Message)
	assert.True(t, strings.HasPrefix(placed.WhatsAppURL, "https://wa.me/"))

	// the cart must be empty afterwards
	var count int64
	require.NoError(t, env.db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(31))

	rec := env.do(http.MethodPost, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
}

func TestMyOrdersNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(32))
	_, designs, _ := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, nil, 1)
	rec := env.do(http.MethodPost, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	addToCart(env, cookie, designs[1].ID, nil, 1)
	rec = env.do(http.MethodPost, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Orders, 2)
	assert.Greater(t, resp.Orders[0].ID, resp.Orders[1].ID)
	require.Len(t, resp.Orders[0].Items, 1)
	require.NotNil(t, resp.Orders[0].Items[0].Design)
}

func TestOrdersAreScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	buyer := env.registerDealer(uniquePhone(33))
	other := env.registerDealer(uniquePhone(34))
	_, designs, _ := env.seedCatalog()

	addToCart(env, buyer, designs[0].ID, nil, 1)
	rec := env.do(http.MethodPost, "/api/v1/orders", nil, buyer)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/v1/orders", nil, other)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Orders)
}

// Mirrors a full dealer session: register, build a cart with a merged line
// and a no-color line, check out, and inspect the WhatsApp handoff.
func TestCheckoutFlow(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(35))
	_, designs, colors := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, &colors[1].ID, 1)
	addToCart(env, cookie, designs[0].ID, &colors[1].ID, 2)
	addToCart(env, cookie, designs[1].ID, nil, 1)

	rec := env.do(http.MethodGet, "/api/v1/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items []models.CartItem `json:"items"`
	}
	decodeBody(t, rec, &cart)
	require.Len(t, cart.Items, 2)

	rec = env.do(http.MethodPost, "/api/v1/orders", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed struct {
		Order       models.Order `json:"order"`
		Message     string       `json:"message"`
		WhatsAppURL string       `json:"whatsapp_url"`
	}
	decodeBody(t, rec, &placed)

	require.Len(t, placed.Order.Items, 2)
	assert.Contains(t, placed.Message, "*Total Items:* 4")
	assert.Contains(t, placed.Message, "Kanjivaram Silk")
	assert.Contains(t, placed.Message, "(Emerald)")

	// default number is used when no whatsapp_number config row exists
	assert.True(t, strings.HasPrefix(placed.WhatsAppURL, "https://wa.me/"+whatsapp.DefaultNumber+"?text="))

	u, err := url.Parse(placed.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, placed.Message, u.Query().Get("text"))

	var count int64
	require.NoError(t, env.db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/v1/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
