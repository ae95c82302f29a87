package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/abreai/abreai-api/models"
)

// BuildOrderMessage formats the order summary handed off to WhatsApp.
// This text is the storefront's only submission integration, so the layout
// matters to whoever confirms orders on the other end.
func BuildOrderMessage(order models.Order) string {
	var b strings.Builder

	b.WriteString("*🎉 NOVO PEDIDO - ABRE AÍ!*\n\n")
	fmt.Fprintf(&b, "*Código de Rastreamento:* %s\n", order.TrackingCode)
	fmt.Fprintf(&b, "*Pedido:* %s\n\n", order.ID)

	b.WriteString("*Cliente:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "Telefone: %s\n\n", order.CustomerPhone)

	b.WriteString("*Endereço de Entrega:*\n")
	fmt.Fprintf(&b, "%s\n\n", order.DeliveryAddress)

	b.WriteString("*Itens:*\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "• %s (%dx) - %s\n", line.Name, line.Quantity, FormatBRL(line.Total()))
	}

	b.WriteString("\n*Resumo do Pedido:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", FormatBRL(order.Subtotal))
	if order.Shipping == 0 {
		b.WriteString("Frete: GRÁTIS\n")
	} else {
		fmt.Fprintf(&b, "Frete: %s\n", FormatBRL(order.Shipping))
	}
	if order.Discount > 0 {
		label := order.CouponCode
		if coupon, err := models.LookupCoupon(order.CouponCode); err == nil {
			label = coupon.Label
		}
		fmt.Fprintf(&b, "Desconto (%s): -%s\n", label, FormatBRL(order.Discount))
	}
	fmt.Fprintf(&b, "*TOTAL: %s*\n", FormatBRL(order.Total))

	if order.PaymentMethod != "" {
		fmt.Fprintf(&b, "\n*Pagamento:* %s\n", Title(order.PaymentMethod))
	}
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n*Observações:*\n%s\n", order.Notes)
	}

	b.WriteString("\nConfirme este pedido para prosseguir! ✅")
	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat pre-filled
// with the message.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
