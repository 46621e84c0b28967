package notifications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrInvalidRecipient = errors.New("invalid email recipient")

// SentEmail is a delivery recorded by SimulatedEmailSender.
type SentEmail struct {
	From    string
	To      string
	Subject string
	Body    string
	SentAt  time.Time
}

// SimulatedEmailSender logs messages instead of delivering them and keeps the
// last few in memory.
type SimulatedEmailSender struct {
	from string
	keep int

	mu   sync.Mutex
	sent []SentEmail
}

var _ interfaces.IEmailSender = (*SimulatedEmailSender)(nil)

func NewSimulatedEmailSender(from string) *SimulatedEmailSender {
	return &SimulatedEmailSender{from: from, keep: 50}
}

func (s *SimulatedEmailSender) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	to = strings.TrimSpace(to)
	if to == "" || !strings.Contains(to, "@") {
		return ErrInvalidRecipient
	}

	msg := SentEmail{From: s.from, To: to, Subject: subject, Body: body, SentAt: time.Now().UTC()}
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	if len(s.sent) > s.keep {
		s.sent = s.sent[len(s.sent)-s.keep:]
	}
	s.mu.Unlock()

	log.Info().Str("to", to).Str("subject", subject).Int("body_len", len(body)).Msg("[notify][email] simulated delivery")
	return nil
}

func (s *SimulatedEmailSender) Sent() []SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentEmail(nil), s.sent...)
}
