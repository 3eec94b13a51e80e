package auth

// ResetMailer envía el enlace de restablecimiento de contraseña.
// El envío es best-effort: el endpoint responde igual exista o no el email.
type ResetMailer interface {
	SendPasswordReset(toEmail, toName, resetLink string) error
}
