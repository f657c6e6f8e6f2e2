package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"

	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/pkg/apperror"
	"github.com/bildo/landing/pkg/logger"
)

// Field names accepted by LeadForm.SetField. They double as the HTML input
// names and the JSON keys of the lead API.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldMessage = "message"
)

// Fields lists every form field in display order.
func Fields() []string {
	return []string{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldMessage}
}

const (
	DefaultRevertDelay     = 3 * time.Second
	DefaultDeliveryTimeout = 10 * time.Second
)

// Field error reasons placed under Details["fields"].
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid"
)

type LeadFormState struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Message   string
	Submitted bool
}

// Timer is the part of *time.Timer the form needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it through a
// small adapter; tests substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type LeadFormOption func(*LeadForm)

func WithRevertDelay(d time.Duration) LeadFormOption {
	return func(f *LeadForm) { f.revertDelay = d }
}

func WithDeliveryTimeout(d time.Duration) LeadFormOption {
	return func(f *LeadForm) { f.deliveryTimeout = d }
}

func WithAfterFunc(af AfterFunc) LeadFormOption {
	return func(f *LeadForm) { f.afterFunc = af }
}

func WithLogger(log *slog.Logger) LeadFormOption {
	return func(f *LeadForm) { f.log = log.With(logger.Scope("ui.leadform")) }
}

// WithClock overrides the timestamp source for SubmittedAt.
func WithClock(now func() time.Time) LeadFormOption {
	return func(f *LeadForm) { f.now = now }
}

// LeadForm holds the demo request form. A successful Submit hands the lead to
// the Deliverer, flips Submitted on and schedules it back off after the
// revert delay. Field values survive the revert.
type LeadForm struct {
	mu         sync.Mutex
	state      LeadFormState
	delivering bool
	timer      Timer
	unmounted  bool

	deliverer       leads.Deliverer
	revertDelay     time.Duration
	deliveryTimeout time.Duration
	afterFunc       AfterFunc
	now             func() time.Time
	log             *slog.Logger
}

func NewLeadForm(deliverer leads.Deliverer, opts ...LeadFormOption) *LeadForm {
	f := &LeadForm{
		deliverer:       deliverer,
		revertDelay:     DefaultRevertDelay,
		deliveryTimeout: DefaultDeliveryTimeout,
		afterFunc:       realAfterFunc,
		now:             time.Now,
		log:             slog.Default().With(logger.Scope("ui.leadform")),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetField replaces one field value.
func (f *LeadForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldName:
		f.state.Name = value
	case FieldEmail:
		f.state.Email = value
	case FieldPhone:
		f.state.Phone = value
	case FieldCompany:
		f.state.Company = value
	case FieldMessage:
		f.state.Message = value
	default:
		return apperror.ErrUnknownField.WithDetails(map[string]any{"field": name})
	}
	return nil
}

func (f *LeadForm) State() LeadFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RevertDelay is how long Submitted stays on after a successful Submit.
func (f *LeadForm) RevertDelay() time.Duration {
	return f.revertDelay
}

// Submit validates the form and hands the lead to the Deliverer. It refuses
// while a previous submission is still showing or still being delivered.
func (f *LeadForm) Submit(ctx context.Context, origin leads.Origin) (leads.Lead, error) {
	f.mu.Lock()
	if f.state.Submitted || f.delivering {
		f.mu.Unlock()
		return leads.Lead{}, apperror.ErrAlreadySubmitted
	}
	if err := Validate(f.state); err != nil {
		f.mu.Unlock()
		return leads.Lead{}, err
	}
	lead := leads.Lead{
		ID:          leads.NewID(),
		Name:        strings.TrimSpace(f.state.Name),
		Email:       strings.TrimSpace(f.state.Email),
		Phone:       strings.TrimSpace(f.state.Phone),
		Company:     strings.TrimSpace(f.state.Company),
		Message:     strings.TrimSpace(f.state.Message),
		Origin:      origin,
		SubmittedAt: f.now().UTC(),
	}
	f.delivering = true
	f.mu.Unlock()

	dctx, cancel := context.WithTimeout(ctx, f.deliveryTimeout)
	err := f.deliverer.Deliver(dctx, lead)
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.delivering = false

	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			f.log.Warn("lead delivery timed out", slog.String("lead_id", lead.ID), logger.Error(err))
			return leads.Lead{}, apperror.ErrDeliveryTimeout.WithInternal(err)
		case errors.Is(err, context.Canceled):
			f.log.Info("lead submission canceled by client", slog.String("lead_id", lead.ID))
			return leads.Lead{}, apperror.ErrSubmitCanceled.WithInternal(err)
		}
		f.log.Warn("lead delivery failed", slog.String("lead_id", lead.ID), logger.Error(err))
		return leads.Lead{}, apperror.ErrDeliveryRejected.WithInternal(err)
	}

	f.state.Submitted = true
	if !f.unmounted {
		f.timer = f.afterFunc(f.revertDelay, f.revert)
	}
	f.log.Info("lead submitted",
		slog.String("lead_id", lead.ID),
		slog.String("channel", origin.Channel))
	return lead, nil
}

func (f *LeadForm) revert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Submitted = false
	f.timer = nil
}

// Reset clears every field. A pending revert is left alone.
func (f *LeadForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = LeadFormState{Submitted: f.state.Submitted}
}

// Unmount cancels a pending revert. The form keeps its last state.
func (f *LeadForm) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unmounted = true
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// Validate checks the required fields and the email format. Every failing
// field is listed under Details["fields"]; the error code is required_field
// when any required field is blank, invalid_email otherwise.
func Validate(s LeadFormState) error {
	fields := map[string]string{}
	required := false

	for _, rf := range []struct {
		name  string
		value string
	}{
		{FieldName, s.Name},
		{FieldEmail, s.Email},
		{FieldCompany, s.Company},
	} {
		if strings.TrimSpace(rf.value) == "" {
			fields[rf.name] = ReasonRequired
			required = true
		}
	}

	if email := strings.TrimSpace(s.Email); email != "" && !govalidator.IsEmail(email) {
		fields[FieldEmail] = ReasonInvalid
	}

	if len(fields) == 0 {
		return nil
	}
	base := apperror.ErrInvalidEmail
	if required {
		base = apperror.ErrRequiredField
	}
	return base.WithDetails(map[string]any{"fields": fields})
}

// FieldErrors extracts the per-field reasons from a Validate error.
func FieldErrors(err error) map[string]string {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return nil
	}
	fields, _ := appErr.Details["fields"].(map[string]string)
	return fields
}
