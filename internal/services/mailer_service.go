package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/arnavsharma2711/pianifica-sub000/internal/errors"
	"github.com/arnavsharma2711/pianifica-sub000/internal/logging"
)

// Mail template names.
const (
	TemplatePasswordReset = "password_reset"
	TemplateWelcome       = "welcome"
)

type mailTemplate struct {
	Subject string
	Body    string
}

// mailTemplates are the stored templates. Variables appear as {name} and
// are substituted at render time.
var mailTemplates = map[string]mailTemplate{
	TemplatePasswordReset: {
		Subject: "Reset your Pianifica password",
		Body:    "Hi {name},\n\nA password reset was requested for your account. Use the token below within the next hour:\n\n{token}\n\nIf you did not request this, you can ignore this message.",
	},
	TemplateWelcome: {
		Subject: "Welcome to Pianifica, {name}",
		Body:    "Hi {name},\n\nYour account on {organization} is ready. Log in with your username {username}.",
	},
}

// MailerService assembles mails from stored templates and delegates
// delivery to an external HTTP mail endpoint.
type MailerService struct {
	endpoint string
	from     string
	client   *http.Client
}

// NewMailerService creates a new MailerService. An empty endpoint
// disables delivery; rendered mails are logged instead.
func NewMailerService(endpoint, from string) *MailerService {
	return &MailerService{
		endpoint: endpoint,
		from:     from,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Render substitutes vars into the named template and returns the subject
// and body.
func (s *MailerService) Render(templateName string, vars map[string]string) (string, string, error) {
	tpl, ok := mailTemplates[templateName]
	if !ok {
		return "", "", apperrors.NotFound("Mail template not found: " + templateName)
	}

	pairs := make([]string, 0, len(vars)*2)
	for key, value := range vars {
		pairs = append(pairs, "{"+key+"}", value)
	}
	replacer := strings.NewReplacer(pairs...)

	return replacer.Replace(tpl.Subject), replacer.Replace(tpl.Body), nil
}

// Send renders the named template and posts it to the mail endpoint.
func (s *MailerService) Send(to, templateName string, vars map[string]string) error {
	subject, body, err := s.Render(templateName, vars)
	if err != nil {
		return err
	}

	if s.endpoint == "" {
		logging.Logger.WithField("to", to).WithField("subject", subject).
			Info("mail endpoint not configured, skipping delivery")
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"from":    s.from,
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	if err != nil {
		return apperrors.Store("Failed to encode mail payload", err)
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return apperrors.Store("Failed to deliver mail", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return apperrors.Store("Mail delivery rejected", fmt.Errorf("mail endpoint returned %d", resp.StatusCode))
	}
	return nil
}
