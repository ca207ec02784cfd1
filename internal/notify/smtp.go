package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"treasure-hunt/internal/config"
)

// SMTPSender delivers winner notices over plain SMTP.
type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from}
}

func (s *SMTPSender) Send(_ context.Context, w Winner) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", w.Email)
	msg.WriteString("Subject: Congratulations! You Won!\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Your guess %q was %dm from the treasure. You won the hunt!\r\n", w.Answer, w.DistanceMeters)
	return smtp.SendMail(s.addr, nil, s.from, []string{w.Email}, []byte(msg.String()))
}

// SenderFromConfig picks the SMTP sender when one is configured, otherwise
// the log sender.
func SenderFromConfig(cfg config.Config) Sender {
	if cfg.SMTPAddr != "" && cfg.SMTPFrom != "" {
		return NewSMTPSender(cfg.SMTPAddr, cfg.SMTPFrom)
	}
	return LogSender{}
}
