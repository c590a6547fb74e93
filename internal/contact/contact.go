// Package contact appends contact-form submissions to the form document held
// by the content API.
package contact

import (
	"context"
	"fmt"
	"time"

	"blogfront/internal/cms"
)

// FormStore reads and rewrites a form document. *cms.Client satisfies it.
type FormStore interface {
	GetForm(ctx context.Context, id string) (*cms.Form, error)
	UpdateFormSubmissions(ctx context.Context, formID string, subs []cms.Submission) error
}

// Accumulator records submissions by reading the form's current log, appending
// one entry, and writing the whole log back. The API has no append or
// conditional write, so two concurrent submitters can lose an entry; the
// window is kept as small as a single read-then-write allows.
type Accumulator struct {
	store  FormStore
	formID string
	now    func() time.Time
}

func New(store FormStore, formID string) *Accumulator {
	return &Accumulator{store: store, formID: formID, now: time.Now}
}

// WithClock overrides the timestamp source. Tests use this.
func (a *Accumulator) WithClock(now func() time.Time) *Accumulator {
	a.now = now
	return a
}

// Submit appends one {email, message} record. A read failure aborts before
// any write.
func (a *Accumulator) Submit(ctx context.Context, email, message string) error {
	form, err := a.store.GetForm(ctx, a.formID)
	if err != nil {
		return fmt.Errorf("fetch form: %w", err)
	}
	entry := cms.Submission{
		SubmittedAt: a.now(),
		Data: map[string]any{
			"email":   email,
			"message": message,
		},
	}
	updated := append(append([]cms.Submission{}, form.Submissions...), entry)
	if err := a.store.UpdateFormSubmissions(ctx, a.formID, updated); err != nil {
		return fmt.Errorf("write submissions: %w", err)
	}
	return nil
}
