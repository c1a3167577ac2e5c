// Package whatsapp renders order notifications as chat text and wa.me deep
// links. Everything here is pure: no I/O, no clock, no randomness.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fashionbrand/storefront/internal/models"
)

// DefaultNumber receives order notifications when no whatsapp_number site
// config row exists.
const DefaultNumber = "919876543210"

// ConfigKey is the site config key holding the destination number.
const ConfigKey = "whatsapp_number"

// BuildDeepLink produces the wa.me URL that opens a chat to phone with text
// pre-filled. Every non-digit in phone is stripped; text is percent-encoded.
func BuildDeepLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}

// FormatOrderMessage renders an order with expanded items into the chat
// message sent to the storefront owner.
func FormatOrderMessage(order *models.Order, user *models.User) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order #%d*\n\n", order.ID)

	b.WriteString("👤 *Customer:*\n")
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	fmt.Fprintf(&b, "Phone: %s\n", user.Phone)
	fmt.Fprintf(&b, "Shop: %s\n", user.ShopName)
	fmt.Fprintf(&b, "Address: %s\n", user.Address)
	fmt.Fprintf(&b, "Pincode: %s\n", user.Pincode)
	if user.GSTNumber != nil && *user.GSTNumber != "" {
		fmt.Fprintf(&b, "GST: %s\n", *user.GSTNumber)
	}

	b.WriteString("\n📦 *Items:*\n")
	var total uint
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s - %s", i+1, productName(item), designName(item))
		if item.Color != nil {
			fmt.Fprintf(&b, " (%s)", item.Color.ColorName)
		}
		fmt.Fprintf(&b, " x%d\n", item.Quantity)
		total += item.Quantity
	}

	fmt.Fprintf(&b, "\n*Total Items:* %d", total)

	return b.String()
}

func productName(item models.OrderItem) string {
	if item.Design != nil && item.Design.Product != nil {
		return item.Design.Product.Name
	}
	return "Product"
}

func designName(item models.OrderItem) string {
	if item.Design != nil {
		return item.Design.Name
	}
	return ""
}
