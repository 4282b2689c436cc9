package ledger

import (
	"net/url"
	"strings"
)

const whatsAppBase = "https://wa.me/?text="

// WhatsAppURL builds the wa.me hand-off link for a product inquiry. No phone
// number is set, so the user picks the recipient.
func WhatsAppURL(productName string) string {
	msg := "Olá! Tenho interesse no produto: " + productName
	return whatsAppBase + strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
