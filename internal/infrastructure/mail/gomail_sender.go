// Package mail implementa el correo saliente sobre SMTP (gomail).
// Dos usos: el enlace de reset de contraseña y la cotización al proveedor.
// El segundo participa en la transacción de aprobación: un error aquí
// revierte el cambio de estado de la cotización.
package mail

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/pos-retail-api/internal/application/auth"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/pkg/config"
)

// Ensure Sender implements both mailer ports.
var _ auth.ResetMailer = (*Sender)(nil)
var _ quotation.Mailer = (*Sender)(nil)

// Sender envía correo por SMTP.
type Sender struct {
	dialer  *gomail.Dialer
	from    string
	replyTo string
}

// NewSender construye el sender con la configuración SMTP.
func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
	}
}

// SendPasswordReset envía el enlace de restablecimiento de contraseña.
func (s *Sender) SendPasswordReset(toEmail, toName, resetLink string) error {
	m := s.newMessage(toEmail)
	m.SetHeader("Subject", "Restablecer contraseña")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Hola %s,</p><p>Para restablecer tu contraseña abre este enlace:</p><p><a href=%q>%s</a></p><p>El enlace vence en minutos. Si no lo pediste, ignora este correo.</p>",
		toName, resetLink, resetLink,
	))
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de reset: %w", err)
	}
	return nil
}

// SendQuotationEmail envía la solicitud de cotización al proveedor.
func (s *Sender) SendQuotationEmail(toEmail, supplierName string, q *entity.Quotation) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Estimado %s,</p>", supplierName)
	b.WriteString("<p>Solicitamos cotización de los siguientes artículos:</p><ul>")
	for _, item := range q.Items {
		fmt.Fprintf(&b, "<li>%s — cantidad %d</li>", item.Name, item.Quantity)
	}
	b.WriteString("</ul>")
	if q.Notes != "" {
		fmt.Fprintf(&b, "<p>Notas: %s</p>", q.Notes)
	}
	fmt.Fprintf(&b, "<p>Referencia: %s</p>", q.ID)

	m := s.newMessage(toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Solicitud de cotización %s", q.ID))
	m.SetBody("text/html", b.String())
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar cotización a %s: %w", toEmail, err)
	}
	return nil
}

func (s *Sender) newMessage(to string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	if s.replyTo != "" {
		m.SetHeader("Reply-To", s.replyTo)
	}
	return m
}
