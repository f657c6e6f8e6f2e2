package leads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/bildo/landing/pkg/logger"
	"github.com/bildo/landing/pkg/tracing"
)

// RejectedError reports a collaborator that answered but refused the lead.
type RejectedError struct {
	Collaborator string
	StatusCode   int
	Reason       string
}

func (e *RejectedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s rejected lead: status %d: %s", e.Collaborator, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s rejected lead: %s", e.Collaborator, e.Reason)
}

// logDeliverer records the lead in the log and nothing else. It is used when
// no real collaborator is configured.
type logDeliverer struct {
	log *slog.Logger
}

// NewLogDeliverer returns a Deliverer that only logs.
func NewLogDeliverer(log *slog.Logger) Deliverer {
	return &logDeliverer{log: log.With(logger.Scope("leads.log"))}
}

func (d *logDeliverer) Deliver(ctx context.Context, lead Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.log.Info("lead received (no delivery configured)",
		slog.String("lead_id", lead.ID),
		slog.String("company", lead.Company),
		slog.String("channel", lead.Origin.Channel))
	return nil
}

type named struct {
	name string
	d    Deliverer
}

// Fanout hands a lead to every collaborator concurrently. The lead counts as
// delivered when at least one collaborator accepted it; the rest are logged
// and counted as partial failures so a retry never re-notifies the ones that
// succeeded.
type Fanout struct {
	targets []named
	log     *slog.Logger
}

// NewFanout builds an empty Fanout; add collaborators with Add.
func NewFanout(log *slog.Logger) *Fanout {
	return &Fanout{log: log.With(logger.Scope("leads.fanout"))}
}

// Add registers a collaborator. Each one is wrapped with metrics and tracing.
func (f *Fanout) Add(name string, d Deliverer) *Fanout {
	f.targets = append(f.targets, named{name: name, d: d})
	return f
}

// Names lists the registered collaborators.
func (f *Fanout) Names() []string {
	out := make([]string, 0, len(f.targets))
	for _, t := range f.targets {
		out = append(out, t.name)
	}
	return out
}

// Deliver returns nil when any collaborator accepted the lead, and the joined
// errors in registration order when all of them failed.
func (f *Fanout) Deliver(ctx context.Context, lead Lead) error {
	errs := make([]error, len(f.targets))

	var wg sync.WaitGroup
	for i, t := range f.targets {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := deliverInstrumented(ctx, t.name, t.d, lead); err != nil {
				errs[i] = fmt.Errorf("%s: %w", t.name, err)
			}
		}()
	}
	wg.Wait()

	delivered := 0
	for _, err := range errs {
		if err == nil {
			delivered++
		}
	}
	if delivered == len(f.targets) {
		return nil
	}
	if delivered == 0 {
		return errors.Join(errs...)
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		partialDeliveriesTotal.WithLabelValues(f.targets[i].name).Inc()
		f.log.Warn("lead accepted but a collaborator failed",
			slog.String("lead_id", lead.ID),
			slog.String("collaborator", f.targets[i].name),
			logger.Error(err))
	}
	return nil
}

func deliverInstrumented(ctx context.Context, name string, d Deliverer, lead Lead) error {
	ctx, span := tracing.Start(ctx, "leads.deliver",
		attribute.String("bildo.lead.id", lead.ID),
		attribute.String("bildo.lead.collaborator", name),
	)
	defer span.End()

	start := time.Now()
	err := d.Deliver(ctx, lead)
	deliveryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	outcome := "delivered"
	if err != nil {
		outcome = "failed"
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			outcome = "timeout"
		case errors.Is(err, context.Canceled):
			outcome = "canceled"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	deliveriesTotal.WithLabelValues(name, outcome).Inc()
	return err
}
