package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/bildo/landing/internal/leads"
	"github.com/bildo/landing/pkg/apperror"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualClock records scheduled callbacks so tests can fire them on demand.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) fire() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.fn()
		}
	}
}

func (c *manualClock) pending() []*manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*manualTimer(nil), c.timers...)
}

type recorder struct {
	mu    sync.Mutex
	leads []leads.Lead
	err   error
}

func (r *recorder) Deliver(_ context.Context, lead leads.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.leads)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fillJuan(t *testing.T, f *LeadForm) {
	t.Helper()
	require.NoError(t, f.SetField(FieldName, "Juan Pérez"))
	require.NoError(t, f.SetField(FieldEmail, "juan@constructora.com"))
	require.NoError(t, f.SetField(FieldCompany, "Constructora ABC"))
}

var formOrigin = leads.Origin{Channel: leads.ChannelForm, RemoteIP: "127.0.0.1"}

func TestLeadForm_SubmitThenRevert(t *testing.T) {
	clock := &manualClock{}
	rec := &recorder{}
	f := NewLeadForm(rec, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)

	lead, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Juan Pérez", lead.Name)
	assert.Equal(t, "juan@constructora.com", lead.Email)
	assert.Equal(t, "Constructora ABC", lead.Company)
	assert.Equal(t, leads.ChannelForm, lead.Origin.Channel)
	assert.Equal(t, 1, rec.count())

	assert.True(t, f.State().Submitted)
	timers := clock.pending()
	require.Len(t, timers, 1)
	assert.Equal(t, DefaultRevertDelay, timers[0].delay)

	clock.fire()
	state := f.State()
	assert.False(t, state.Submitted)
	assert.Equal(t, "Juan Pérez", state.Name, "fields survive the revert")
	assert.Equal(t, "Constructora ABC", state.Company)
}

func TestLeadForm_SetField(t *testing.T) {
	f := NewLeadForm(&recorder{}, WithLogger(quietLogger()))
	for _, name := range Fields() {
		require.NoError(t, f.SetField(name, name+"-value"))
	}
	assert.Equal(t, LeadFormState{
		Name:    "name-value",
		Email:   "email-value",
		Phone:   "phone-value",
		Company: "company-value",
		Message: "message-value",
	}, f.State())

	err := f.SetField("website", "x")
	assert.ErrorIs(t, err, apperror.ErrUnknownField)
}

func TestLeadForm_ValidationRunsBeforeDelivery(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		code   *apperror.Error
		want   map[string]string
	}{
		{
			name:   "empty name",
			fields: map[string]string{FieldName: "", FieldEmail: "juan@constructora.com", FieldCompany: "ABC"},
			code:   apperror.ErrRequiredField,
			want:   map[string]string{FieldName: ReasonRequired},
		},
		{
			name:   "whitespace company",
			fields: map[string]string{FieldName: "Juan", FieldEmail: "juan@constructora.com", FieldCompany: "   "},
			code:   apperror.ErrRequiredField,
			want:   map[string]string{FieldCompany: ReasonRequired},
		},
		{
			name:   "malformed email",
			fields: map[string]string{FieldName: "Juan", FieldEmail: "juan@", FieldCompany: "ABC"},
			code:   apperror.ErrInvalidEmail,
			want:   map[string]string{FieldEmail: ReasonInvalid},
		},
		{
			name:   "everything missing",
			fields: map[string]string{},
			code:   apperror.ErrRequiredField,
			want:   map[string]string{FieldName: ReasonRequired, FieldEmail: ReasonRequired, FieldCompany: ReasonRequired},
		},
		{
			name:   "missing name with bad email",
			fields: map[string]string{FieldEmail: "no-at-sign", FieldCompany: "ABC"},
			code:   apperror.ErrRequiredField,
			want:   map[string]string{FieldName: ReasonRequired, FieldEmail: ReasonInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &manualClock{}
			rec := &recorder{}
			f := NewLeadForm(rec, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
			for k, v := range tt.fields {
				require.NoError(t, f.SetField(k, v))
			}

			_, err := f.Submit(context.Background(), formOrigin)
			assert.ErrorIs(t, err, tt.code)
			assert.Equal(t, tt.want, FieldErrors(err))
			assert.Equal(t, 0, rec.count())
			assert.False(t, f.State().Submitted)
			assert.Empty(t, clock.pending())
		})
	}
}

func TestLeadForm_OptionalFieldsMayBeBlank(t *testing.T) {
	assert.NoError(t, Validate(LeadFormState{Name: "Ana", Email: "ana@bildo.ai", Company: "BILDO"}))
}

func TestLeadForm_DuplicateWhileShowingSuccess(t *testing.T) {
	clock := &manualClock{}
	rec := &recorder{}
	f := NewLeadForm(rec, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)

	_, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)

	_, err = f.Submit(context.Background(), formOrigin)
	assert.ErrorIs(t, err, apperror.ErrAlreadySubmitted)
	assert.Equal(t, 1, rec.count())

	clock.fire()
	_, err = f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.count())
}

func TestLeadForm_DuplicateWhileDelivering(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	slow := leads.DelivererFunc(func(ctx context.Context, _ leads.Lead) error {
		calls.Add(1)
		close(started)
		<-release
		return nil
	})

	clock := &manualClock{}
	f := NewLeadForm(slow, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), formOrigin)
		done <- err
	}()

	<-started
	_, err := f.Submit(context.Background(), formOrigin)
	assert.ErrorIs(t, err, apperror.ErrAlreadySubmitted)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLeadForm_DeliveryFailures(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		blocking := leads.DelivererFunc(func(ctx context.Context, _ leads.Lead) error {
			<-ctx.Done()
			return ctx.Err()
		})
		clock := &manualClock{}
		f := NewLeadForm(blocking,
			WithDeliveryTimeout(5*time.Millisecond),
			WithAfterFunc(clock.AfterFunc),
			WithLogger(quietLogger()))
		fillJuan(t, f)

		_, err := f.Submit(context.Background(), formOrigin)
		assert.ErrorIs(t, err, apperror.ErrDeliveryTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, f.State().Submitted)
		assert.Empty(t, clock.pending())
	})

	t.Run("rejection", func(t *testing.T) {
		rec := &recorder{err: &leads.RejectedError{Collaborator: "webhook", StatusCode: 400, Reason: "bad"}}
		f := NewLeadForm(rec, WithLogger(quietLogger()))
		fillJuan(t, f)

		_, err := f.Submit(context.Background(), formOrigin)
		assert.ErrorIs(t, err, apperror.ErrDeliveryRejected)

		var re *leads.RejectedError
		assert.True(t, errors.As(err, &re))
		assert.False(t, f.State().Submitted)
	})

	t.Run("client went away", func(t *testing.T) {
		blocking := leads.DelivererFunc(func(ctx context.Context, _ leads.Lead) error {
			<-ctx.Done()
			return ctx.Err()
		})
		f := NewLeadForm(blocking, WithLogger(quietLogger()))
		fillJuan(t, f)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.Submit(ctx, formOrigin)
		assert.ErrorIs(t, err, apperror.ErrSubmitCanceled)
		assert.NotErrorIs(t, err, apperror.ErrDeliveryRejected)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, f.State().Submitted)
	})

	t.Run("can retry after failure", func(t *testing.T) {
		rec := &recorder{err: errors.New("boom")}
		clock := &manualClock{}
		f := NewLeadForm(rec, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
		fillJuan(t, f)

		_, err := f.Submit(context.Background(), formOrigin)
		require.Error(t, err)

		rec.err = nil
		_, err = f.Submit(context.Background(), formOrigin)
		require.NoError(t, err)
		assert.True(t, f.State().Submitted)
	})
}

func TestLeadForm_UnmountCancelsRevert(t *testing.T) {
	clock := &manualClock{}
	f := NewLeadForm(&recorder{}, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)

	_, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)

	timers := clock.pending()
	require.Len(t, timers, 1)

	f.Unmount()
	assert.True(t, timers[0].stopped)

	clock.fire()
	assert.True(t, f.State().Submitted, "cancelled revert never runs")
	f.Unmount()
}

func TestLeadForm_SubmitAfterUnmountSchedulesNothing(t *testing.T) {
	clock := &manualClock{}
	f := NewLeadForm(&recorder{}, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)
	f.Unmount()

	_, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)
	assert.Empty(t, clock.pending())
}

func TestLeadForm_Reset(t *testing.T) {
	clock := &manualClock{}
	f := NewLeadForm(&recorder{}, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	fillJuan(t, f)
	_, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)

	f.Reset()
	assert.Equal(t, LeadFormState{Submitted: true}, f.State())
	clock.fire()
	assert.Equal(t, LeadFormState{}, f.State())
}

func TestLeadForm_RealTimerReverts(t *testing.T) {
	f := NewLeadForm(&recorder{}, WithRevertDelay(20*time.Millisecond), WithLogger(quietLogger()))
	fillJuan(t, f)
	assert.Equal(t, 20*time.Millisecond, f.RevertDelay())

	_, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)
	assert.True(t, f.State().Submitted)

	assert.Eventually(t, func() bool { return !f.State().Submitted }, time.Second, 5*time.Millisecond)
}

func TestLeadForm_SubmittedAtUsesClock(t *testing.T) {
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.FixedZone("COT", -5*3600))
	f := NewLeadForm(&recorder{}, WithClock(func() time.Time { return at }), WithLogger(quietLogger()))
	fillJuan(t, f)

	lead, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)
	assert.Equal(t, at.UTC(), lead.SubmittedAt)
	f.Unmount()
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("plain")))
	assert.Nil(t, FieldErrors(apperror.ErrAlreadySubmitted))
}

func TestLeadForm_PartialDeliveryIsAccepted(t *testing.T) {
	mail := &recorder{}
	crm := &recorder{err: &leads.RejectedError{Collaborator: "webhook", StatusCode: 503, Reason: "unavailable"}}
	fanout := leads.NewFanout(quietLogger()).Add("mailgun", mail).Add("webhook", crm)

	clock := &manualClock{}
	f := NewLeadForm(fanout, WithAfterFunc(clock.AfterFunc), WithLogger(quietLogger()))
	require.NoError(t, f.SetField(FieldName, "Juan Pérez"))
	require.NoError(t, f.SetField(FieldEmail, "juan@empresa.com"))
	require.NoError(t, f.SetField(FieldCompany, "Constructora ABC"))

	lead, err := f.Submit(context.Background(), formOrigin)
	require.NoError(t, err)
	assert.True(t, f.State().Submitted)

	_, err = f.Submit(context.Background(), formOrigin)
	assert.ErrorIs(t, err, apperror.ErrAlreadySubmitted)

	require.Equal(t, 1, mail.count(), "the sales inbox is notified once")
	assert.Equal(t, lead.ID, mail.leads[0].ID)
	assert.Equal(t, 1, crm.count())
}
