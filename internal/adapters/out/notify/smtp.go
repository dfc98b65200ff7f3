package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

const defaultSMTPTimeout = 10 * time.Second

// SMTPConfig configures the email sink. Username empty disables auth.
// Timeout bounds one whole conversation with the server.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type sendMailFunc func(ctx context.Context, to string, msg []byte) error

// SMTPSink sends plain text email. Messages without an address are skipped.
type SMTPSink struct {
	host     string
	addr     string
	from     string
	auth     smtp.Auth
	timeout  time.Duration
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPSink(cfg SMTPConfig) *SMTPSink {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	s := &SMTPSink{
		host:    cfg.Host,
		addr:    net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		from:    cfg.From,
		auth:    auth,
		timeout: cfg.Timeout,
		now:     time.Now,
	}
	s.sendMail = s.deliver
	return s
}

func (s *SMTPSink) Name() string {
	return "email"
}

func (s *SMTPSink) Send(ctx context.Context, msg Message) error {
	if msg.Email == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sendMail(ctx, msg.Email, s.compose(msg))
}

// deliver runs one SMTP conversation. The connection deadline is the
// earlier of the sink timeout and the context deadline, and canceling ctx
// closes the connection.
func (s *SMTPSink) deliver(ctx context.Context, to string, msg []byte) error {
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	if err = conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to greet smtp server: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}
	if s.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err = c.Auth(s.auth); err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}
		}
	}
	if err = c.Mail(s.from); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (s *SMTPSink) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + msg.Email + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + s.now().UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
