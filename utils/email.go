package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/abreai/abreai-api/models"
)

// Mailer sends transactional emails over SMTP
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewMailerFromEnv builds a mailer from SMTP_* environment variables.
// Returns nil when SMTP is not configured; callers treat a nil mailer as
// "skip emails".
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return &Mailer{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendOrderConfirmation emails the customer their order summary and
// tracking code.
func (m *Mailer) SendOrderConfirmation(order models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	var items strings.Builder
	for _, line := range order.Lines {
		fmt.Fprintf(&items, "<li>%dx %s - %s</li>", line.Quantity, line.Name, FormatBRL(line.Total()))
	}

	body := fmt.Sprintf(`
		<h2>Obrigado pelo seu pedido, %s!</h2>
		<p>Seu pedido <b>%s</b> foi recebido e está aguardando confirmação.</p>
		<p>Código de rastreamento: <b style="font-size: 20px; letter-spacing: 3px;">%s</b></p>
		<ul>%s</ul>
		<p>Total: <b>%s</b></p>
		<p>Endereço de entrega: %s</p>
	`, order.CustomerName, order.ID, order.TrackingCode, items.String(), FormatBRL(order.Total), order.DeliveryAddress)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", order.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Pedido %s recebido - ABRE AÍ!", order.ID))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return WrapError(err, "failed to send confirmation email")
	}

	return nil
}
