package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"crewdesk/internal/domain/organization"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// SMTPInvitationSender delivers invitation emails over SMTP. It satisfies the
// organization use cases' InvitationNotifier contract.
type SMTPInvitationSender struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPInvitationSender(config SMTPConfig) *SMTPInvitationSender {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPInvitationSender{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPInvitationSender) SendInvitation(ctx context.Context, invitation *organization.Invitation, organizationName, inviterName string) error {
	inviteURL := fmt.Sprintf("%s/invitations/%s", s.config.BaseURL, invitation.Token())

	subject := fmt.Sprintf("You've been invited to join %s", organizationName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Join %s on Crewdesk</h2>
			<p>%s has invited you to join <strong>%s</strong> as a %s.</p>
			<p><a href="%s">Accept Invitation</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This invitation expires on %s.</p>
			<p>If you weren't expecting this invitation, you can ignore this email.</p>
		</body>
		</html>
	`, organizationName, inviterName, organizationName, invitation.Role().String(), inviteURL, inviteURL,
		invitation.ExpiresAt().Format("January 2, 2006"))

	plainBody := fmt.Sprintf(`
Join %s on Crewdesk

%s has invited you to join %s as a %s.

Accept the invitation by visiting:
%s

This invitation expires on %s.

If you weren't expecting this invitation, you can ignore this email.
	`, organizationName, inviterName, organizationName, invitation.Role().String(), inviteURL,
		invitation.ExpiresAt().Format("January 2, 2006"))

	return s.sendEmail(invitation.Email(), subject, htmlBody, plainBody)
}

func (s *SMTPInvitationSender) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
