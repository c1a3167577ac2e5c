package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fashionbrand/storefront/internal/models"
)

func TestBuildDeepLinkStripsFormatting(t *testing.T) {
	link := BuildDeepLink("+91 98765-43210", "hi")
	assert.Equal(t, "https://wa.me/919876543210?text=hi", link)
}

func TestBuildDeepLinkEncodesText(t *testing.T) {
	link := BuildDeepLink("919876543210", "New Order #7\nTotal: 4")
	assert.Equal(t, "https://wa.me/919876543210?text=New+Order+%237%0ATotal%3A+4", link)
}

func TestFormatOrderMessage(t *testing.T) {
	gst := "27AAPFU0939F1ZV"
	user := &models.User{
		Name:      "Ravi Traders",
		Phone:     "9876500001",
		ShopName:  "Ravi Fashion House",
		Address:   "12 Market Road",
		Pincode:   "400001",
		GSTNumber: &gst,
	}
	product := &models.Product{Name: "Kanjivaram Silk"}
	order := &models.Order{
		ID: 7,
		Items: []models.OrderItem{
			{
				Design:   &models.Design{Name: "Peacock Border", Product: product},
				Color:    &models.Color{ColorName: "Maroon"},
				Quantity: 3,
			},
			{
				Design:   &models.Design{Name: "Temple Border", Product: product},
				Quantity: 1,
			},
		},
	}

	msg := FormatOrderMessage(order, user)

	assert.Contains(t, msg, "🛒 *New Order #7*")
	assert.Contains(t, msg, "Name: Ravi Traders")
	assert.Contains(t, msg, "GST: 27AAPFU0939F1ZV")
	assert.Contains(t, msg, "1. Kanjivaram Silk - Peacock Border (Maroon) x3")
	assert.Contains(t, msg, "2. Kanjivaram Silk - Temple Border x1")
	assert.Contains(t, msg, "*Total Items:* 4")
}

func TestFormatOrderMessageOmitsEmptyGST(t *testing.T) {
	user := &models.User{Name: "Shop", Phone: "1", ShopName: "S", Address: "A", Pincode: "0"}
	order := &models.Order{ID: 1}

	msg := FormatOrderMessage(order, user)
	assert.NotContains(t, msg, "GST:")
}
