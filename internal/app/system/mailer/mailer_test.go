package mailer

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type captured struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestMailer(cfg Config, c *captured, err error) *Mailer {
	m := New(cfg, zap.NewNop())
	m.now = func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) }
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*c = captured{addr: addr, auth: a, from: from, to: to, msg: string(msg)}
		return err
	}
	return m
}

func TestSend_PlainText(t *testing.T) {
	var c captured
	m := newTestMailer(Config{Host: "localhost", Port: 1025, From: "studio@example.com", FromName: "Orson Vision"}, &c, nil)

	err := m.Send(Email{To: "team@example.com", Subject: "Hello", TextBody: "body"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if c.addr != "localhost:1025" {
		t.Errorf("addr = %q", c.addr)
	}
	if c.auth != nil {
		t.Error("auth should be nil without a user")
	}
	if len(c.to) != 1 || c.to[0] != "team@example.com" {
		t.Errorf("to = %v", c.to)
	}
	for _, want := range []string{
		`From: "Orson Vision" <studio@example.com>`,
		"Subject: Hello",
		"Content-Type: text/plain; charset=utf-8",
		"\r\n\r\nbody",
	} {
		if !strings.Contains(c.msg, want) {
			t.Errorf("message missing %q:\n%s", want, c.msg)
		}
	}
}

func TestSend_Multipart(t *testing.T) {
	var c captured
	m := newTestMailer(Config{Host: "smtp.example.com", Port: 587, User: "u", Pass: "p", From: "a@example.com"}, &c, nil)

	if err := m.Send(Email{To: "b@example.com", Subject: "Vérité", TextBody: "t", HTMLBody: "<p>h</p>"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if c.auth == nil {
		t.Error("expected PLAIN auth when a user is configured")
	}
	if !strings.Contains(c.msg, "multipart/alternative") || !strings.Contains(c.msg, "<p>h</p>") {
		t.Errorf("unexpected message:\n%s", c.msg)
	}
	if !strings.Contains(c.msg, "=?utf-8?q?") {
		t.Errorf("subject not encoded:\n%s", c.msg)
	}
}

func TestSend_Errors(t *testing.T) {
	var c captured
	m := newTestMailer(Config{Host: "localhost", Port: 25}, &c, errors.New("refused"))

	if err := m.Send(Email{Subject: "x"}); !errors.Is(err, ErrNoRecipient) {
		t.Errorf("err = %v, want ErrNoRecipient", err)
	}
	if err := m.Send(Email{To: "x@example.com"}); err == nil || !strings.Contains(err.Error(), "refused") {
		t.Errorf("err = %v, want wrapped transport error", err)
	}
}

func TestBuildContactNotification(t *testing.T) {
	e := BuildContactNotification(ContactNotificationData{
		SiteName:    "Orson Vision",
		Form:        "project",
		Name:        "Ada <script>",
		Email:       "ada@example.com",
		Fields:      []ContactField{{Label: "Budget", Value: "10k-25k"}, {Label: "Phone"}},
		Message:     "We need a brand film.",
		Attachments: []string{"brief.pdf"},
		Language:    "en",
	})

	if e.Subject != "[Orson Vision] New project enquiry from Ada <script>" {
		t.Errorf("Subject = %q", e.Subject)
	}
	if !strings.Contains(e.TextBody, "Budget: 10k-25k") || strings.Contains(e.TextBody, "Phone:") {
		t.Errorf("TextBody = %q", e.TextBody)
	}
	if strings.Contains(e.HTMLBody, "<script>") {
		t.Error("HTML body must escape user input")
	}
	if !strings.Contains(e.HTMLBody, "brief.pdf") {
		t.Error("HTML body missing attachment name")
	}
}
