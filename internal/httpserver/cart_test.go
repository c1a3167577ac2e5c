package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionbrand/storefront/internal/models"
)

func addToCart(env *testEnv, cookie *http.Cookie, designID uint, colorID *uint, qty uint) *models.CartItem {
	env.t.Helper()

	body := map[string]any{"design_id": designID, "quantity": qty}
	if colorID != nil {
		body["color_id"] = *colorID
	}
	rec := env.do(http.MethodPost, "/api/v1/cart", body, cookie)
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	var item models.CartItem
	decodeBody(env.t, rec, &item)
	return &item
}

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(10))
	_, designs, colors := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, &colors[0].ID, 2)
	addToCart(env, cookie, designs[0].ID, &colors[0].ID, 3)

	var items []models.CartItem
	require.NoError(t, env.db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, uint(5), items[0].Quantity)
}

func TestAddToCartColorVariantsAreSeparateLines(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(11))
	_, designs, colors := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, &colors[0].ID, 1)
	addToCart(env, cookie, designs[0].ID, &colors[1].ID, 1)
	addToCart(env, cookie, designs[0].ID, nil, 1)

	var items []models.CartItem
	require.NoError(t, env.db.Find(&items).Error)
	assert.Len(t, items, 3)
}

func TestAddToCartMergesNoColorLines(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(12))
	_, designs, _ := env.seedCatalog()

	addToCart(env, cookie, designs[1].ID, nil, 1)
	addToCart(env, cookie, designs[1].ID, nil, 4)

	var items []models.CartItem
	require.NoError(t, env.db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, uint(5), items[0].Quantity)
	assert.Nil(t, items[0].ColorID)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(13))
	_, designs, _ := env.seedCatalog()

	rec := env.do(http.MethodPost, "/api/v1/cart", map[string]any{
		"design_id": designs[0].ID,
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, uint(1), item.Quantity)
}

func TestAddToCartUnknownDesign(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(14))
	env.seedCatalog()

	rec := env.do(http.MethodPost, "/api/v1/cart", map[string]any{
		"design_id": 9999,
	}, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestAddToCartMissingDesign(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(15))

	rec := env.do(http.MethodPost, "/api/v1/cart", map[string]any{"quantity": 2}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCartExpandsItems(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(16))
	product, designs, colors := env.seedCatalog()

	addToCart(env, cookie, designs[0].ID, &colors[0].ID, 2)

	rec := env.do(http.MethodGet, "/api/v1/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Items[0].Design)
	require.NotNil(t, resp.Items[0].Design.Product)
	assert.Equal(t, product.Name, resp.Items[0].Design.Product.Name)
	require.NotNil(t, resp.Items[0].Color)
	assert.Equal(t, colors[0].ColorName, resp.Items[0].Color.ColorName)
}

func TestUpdateQuantityFloor(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(17))
	_, designs, _ := env.seedCatalog()

	item := addToCart(env, cookie, designs[0].ID, nil, 3)

	for _, qty := range []int{0, -1} {
		rec := env.do(http.MethodPatch, fmt.Sprintf("/api/v1/cart/%d", item.ID),
			map[string]any{"quantity": qty}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "quantity %d", qty)
	}

	var unchanged models.CartItem
	require.NoError(t, env.db.First(&unchanged, item.ID).Error)
	assert.Equal(t, uint(3), unchanged.Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(18))
	_, designs, _ := env.seedCatalog()

	item := addToCart(env, cookie, designs[0].ID, nil, 1)

	rec := env.do(http.MethodPatch, fmt.Sprintf("/api/v1/cart/%d", item.ID),
		map[string]any{"quantity": 7}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.CartItem
	decodeBody(t, rec, &updated)
	assert.Equal(t, uint(7), updated.Quantity)
}

func TestCartOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerDealer(uniquePhone(19))
	other := env.registerDealer(uniquePhone(20))
	_, designs, _ := env.seedCatalog()

	item := addToCart(env, owner, designs[0].ID, nil, 2)

	rec := env.do(http.MethodPatch, fmt.Sprintf("/api/v1/cart/%d", item.ID),
		map[string]any{"quantity": 9}, other)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", item.ID), nil, other)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var unchanged models.CartItem
	require.NoError(t, env.db.First(&unchanged, item.ID).Error)
	assert.Equal(t, uint(2), unchanged.Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerDealer(uniquePhone(21))
	_, designs, _ := env.seedCatalog()

	item := addToCart(env, cookie, designs[0].ID, nil, 1)

	rec := env.do(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", item.ID), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/v1/cart/%d", item.ID), nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/v1/cart", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodPost, "/api/v1/cart", map[string]any{"design_id": 1}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
