// internal/app/system/mailer/mailer.go
package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Email is one outgoing message. HTMLBody is optional.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// ErrNoRecipient is returned by Send when Email.To is empty.
var ErrNoRecipient = errors.New("mailer: no recipient")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends mail through one SMTP relay.
type Mailer struct {
	cfg  Config
	log  *zap.Logger
	send sendFunc
	now  func() time.Time
}

// New builds a Mailer. Auth is used only when User is set.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: logger, send: smtp.SendMail, now: time.Now}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool { return m != nil && m.cfg.Host != "" }

// Send delivers e. The message is multipart/alternative when HTMLBody is set.
func (m *Mailer) Send(e Email) error {
	if e.To == "" {
		return ErrNoRecipient
	}
	msg, err := m.build(e)
	if err != nil {
		return fmt.Errorf("build message: %w", err)
	}

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.From, []string{e.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", addr, err)
	}
	m.log.Info("mail sent", zap.String("to", e.To), zap.String("subject", e.Subject))
	return nil
}

func (m *Mailer) build(e Email) ([]byte, error) {
	var buf bytes.Buffer
	from := (&mail.Address{Name: m.cfg.FromName, Address: m.cfg.From}).String()

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", e.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", e.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", m.now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")

	if e.HTMLBody == "" {
		buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		buf.WriteString(e.TextBody)
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())
	for _, part := range []struct{ ctype, body string }{
		{"text/plain; charset=utf-8", e.TextBody},
		{"text/html; charset=utf-8", e.HTMLBody},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.ctype}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
