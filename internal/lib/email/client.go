// Package email renders the embedded HTML templates and sends them through
// Resend.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/deppfellow/recruitly/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

type Client struct {
	client    *resend.Client
	templates *template.Template
	from      string
	appURL    string
	logger    *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	tmpl, err := template.New("").Option("missingkey=zero").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}

	return &Client{
		client:    resend.NewClient(cfg.Integration.ResendAPIKey),
		templates: tmpl,
		from:      fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromAddress),
		appURL:    cfg.Email.AppURL,
		logger:    logger,
	}, nil
}

// Render executes the named template. AppURL is always available to
// templates.
func (c *Client) Render(name Template, data map[string]string) (string, error) {
	if !name.Valid() {
		return "", errors.Errorf("unknown email template %q", name)
	}

	vars := make(map[string]string, len(data)+1)
	for k, v := range data {
		vars[k] = v
	}
	if _, ok := vars["AppURL"]; !ok {
		vars["AppURL"] = c.appURL
	}

	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, name.file(), vars); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}

// Send renders msg and hands it to Resend, returning the provider message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	html, err := c.Render(msg.Template, msg.Data)
	if err != nil {
		return "", err
	}

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    html,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("template", string(msg.Template)).
		Str("to", msg.To).
		Str("message_id", sent.Id).
		Msg("email sent")

	return sent.Id, nil
}
