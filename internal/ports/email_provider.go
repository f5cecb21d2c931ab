package ports

import (
	"context"
	"fmt"
	"strings"
)

// EmailParams is one outgoing message
type EmailParams struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// Validate reports the first missing field
func (p EmailParams) Validate() error {
	switch {
	case strings.TrimSpace(p.To) == "":
		return fmt.Errorf("recipient email cannot be empty")
	case strings.TrimSpace(p.Subject) == "":
		return fmt.Errorf("email subject cannot be empty")
	case p.Body == "":
		return fmt.Errorf("email body cannot be empty")
	}
	return nil
}

// EmailProvider delivers notification emails. Implementations must honour
// ctx cancellation while dialing.
type EmailProvider interface {
	SendEmail(ctx context.Context, params EmailParams) error
}
