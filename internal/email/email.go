package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"go.uber.org/zap"
)

// Config holds email configuration, loaded from environment variables.
type Config struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
	BaseURL  string
	MockMode bool
}

func LoadConfig() Config {
	return Config{
		SMTPHost: getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort: getEnvOrDefault("SMTP_PORT", "587"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		Sender:   getEnvOrDefault("EMAIL_SENDER", "noreply@yallo.fr"),
		BaseURL:  getEnvOrDefault("APP_BASE_URL", "http://localhost:3000"),
		MockMode: getEnvOrDefault("EMAIL_MOCK_MODE", "false") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type Sender struct {
	cfg Config
	log *zap.Logger
}

func NewSender(cfg Config, log *zap.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2>Bienvenue sur Yallo</h2>
<p>Votre compte restaurateur a été créé.</p>
<p>Mot de passe temporaire : <strong>{{.TempPassword}}</strong></p>
<p>Connectez-vous et changez-le dès votre première visite : {{.BaseURL}}/login</p>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<h2>Réinitialisation du mot de passe</h2>
<p>Cliquez sur le lien ci-dessous pour choisir un nouveau mot de passe (valable 1 heure) :</p>
<p><a href="{{.BaseURL}}/reset-password?token={{.Token}}">Réinitialiser mon mot de passe</a></p>
`))

func (s *Sender) SendWelcomeEmail(email, tempPassword string) error {
	var body bytes.Buffer
	err := welcomeTmpl.Execute(&body, map[string]string{
		"TempPassword": tempPassword,
		"BaseURL":      s.cfg.BaseURL,
	})
	if err != nil {
		return err
	}
	return s.send(email, "Bienvenue sur Yallo", body.String())
}

func (s *Sender) SendResetPasswordEmail(email, token string) error {
	var body bytes.Buffer
	err := resetTmpl.Execute(&body, map[string]string{
		"Token":   token,
		"BaseURL": s.cfg.BaseURL,
	})
	if err != nil {
		return err
	}
	return s.send(email, "Réinitialisation du mot de passe", body.String())
}

func (s *Sender) send(to, subject, htmlBody string) error {
	if s.cfg.MockMode {
		s.log.Info("mock email",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.Sender, to, subject, htmlBody,
	)

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.Sender, []string{to}, []byte(msg)); err != nil {
		s.log.Error("email delivery failed", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
