package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendMemberAddedEmail(ctx context.Context, toEmail, toName, collectionName string) error
}
