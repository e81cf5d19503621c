package noop

import (
	"context"
	"log"

	"kinshare/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendMemberAddedEmail(_ context.Context, toEmail, toName, collectionName string) error {
	log.Printf("[NOOP EMAIL] Member-added notice for %s (%s): added to %q, see %s", toName, toEmail, collectionName, s.frontendURL)
	return nil
}
