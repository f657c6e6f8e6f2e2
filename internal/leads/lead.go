// Package leads hands captured leads to the delivery collaborators: a sales
// notification email, a CRM webhook, or the log when neither is configured.
package leads

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective-customer contact record captured by the demo form.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company"`
	Message     string    `json:"message,omitempty"`
	Origin      Origin    `json:"origin"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Origin describes where a submission came from.
type Origin struct {
	Channel   string `json:"channel"`
	RemoteIP  string `json:"remoteIp,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

const (
	ChannelForm = "form"
	ChannelAPI  = "api"
)

// NewID returns a fresh lead identifier.
func NewID() string {
	return uuid.NewString()
}

// Deliverer hands a lead to an external collaborator. Implementations must
// honour ctx cancellation; a deadline error is reported as a timeout.
type Deliverer interface {
	Deliver(ctx context.Context, lead Lead) error
}

// DelivererFunc adapts a function to Deliverer.
type DelivererFunc func(ctx context.Context, lead Lead) error

func (f DelivererFunc) Deliver(ctx context.Context, lead Lead) error {
	return f(ctx, lead)
}
