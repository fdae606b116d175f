package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"

	appconfig "reform_flow/internal/config"
	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase/interfaces"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

var invitationTemplate = template.Must(template.New("invitation").Parse(`<html>
<body>
  <p>You have been invited to review the reformulation proposal for
  <strong>{{.ProductName}}</strong> ({{.Category}}).</p>
  <p>Please accept or decline the invitation, then record your decision.</p>
  <p>Proposal reference: {{.ID}}</p>
</body>
</html>`))

var statusChangeTemplate = template.Must(template.New("status_change").Parse(`<html>
<body>
  <p>The proposal for <strong>{{.Proposal.ProductName}}</strong> moved from
  {{.Change.OldStatus}} to <strong>{{.Change.NewStatus}}</strong>.</p>
  <p>{{.Change.Reason}}</p>
  <p>Proposal reference: {{.Proposal.ID}}</p>
</body>
</html>`))

// SMTPGateway delivers workflow emails over SMTP.
//
// In mock mode (NOTIFICATIONS_MOCK) nothing is sent; messages are logged so
// local development works without a mail server.

type SMTPGateway struct {
	addr     string
	host     string
	from     string
	username string
	password string
	mockMode bool
}

var _ interfaces.INotificationGateway = (*SMTPGateway)(nil)

func NewSMTPGateway(cfg appconfig.Config) (*SMTPGateway, error) {
	if cfg.NotificationsMock {
		log.Printf("[notifications][gateway] mock mode enabled")
		return &SMTPGateway{mockMode: true, from: cfg.EmailFrom}, nil
	}

	if strings.TrimSpace(cfg.SMTPHost) == "" {
		log.Printf("[notifications][gateway] missing SMTP_HOST")
		return nil, ErrMissingSMTPHost
	}

	return &SMTPGateway{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		host:     cfg.SMTPHost,
		from:     cfg.EmailFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}, nil
}

func (g *SMTPGateway) SendInvitation(ctx context.Context, to string, proposal entities.Proposal) error {
	var body bytes.Buffer
	if err := invitationTemplate.Execute(&body, proposal); err != nil {
		return err
	}
	subject := fmt.Sprintf("Review invitation: %s", proposal.ProductName)
	return g.send(ctx, to, subject, body.Bytes())
}

func (g *SMTPGateway) SendStatusChange(ctx context.Context, to string, proposal entities.Proposal, change entities.StatusChange) error {
	var body bytes.Buffer
	data := struct {
		Proposal entities.Proposal
		Change   entities.StatusChange
	}{Proposal: proposal, Change: change}
	if err := statusChangeTemplate.Execute(&body, data); err != nil {
		return err
	}
	subject := fmt.Sprintf("Proposal status update: %s is now %s", proposal.ProductName, change.NewStatus)
	return g.send(ctx, to, subject, body.Bytes())
}

func (g *SMTPGateway) send(ctx context.Context, to, subject string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if g.mockMode {
		log.Printf("[notifications][gateway] mock send to=%s subject=%q body_len=%d", to, subject, len(body))
		return nil
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", g.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body)

	var auth smtp.Auth
	if g.username != "" {
		auth = smtp.PlainAuth("", g.username, g.password, g.host)
	}

	if err := smtp.SendMail(g.addr, auth, g.from, []string{to}, msg.Bytes()); err != nil {
		log.Printf("[notifications][gateway] send failed to=%s err=%v", to, err)
		return err
	}
	log.Printf("[notifications][gateway] send success to=%s subject=%q", to, subject)
	return nil
}
