package eslatma

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrValidation wraps input validation failures.
var ErrValidation = errors.New("eslatma: validation failed")

// Service handles reminder business logic.
type Service struct {
	repo RepositoryPort
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput carries fields for a new reminder.
type CreateInput struct {
	Title       string
	Message     string
	Date        string
	IsRecurring bool
	Frequency   Frequency
	IsActive    bool
}

// Patch carries a partial update. Nil fields keep their current value.
type Patch struct {
	Title       *string
	Message     *string
	Date        *string
	IsRecurring *bool
	Frequency   *Frequency
	IsActive    *bool
}

// List returns all reminders.
func (s *Service) List(ctx context.Context) ([]Reminder, error) {
	return s.repo.List(ctx)
}

// Get fetches a single reminder.
func (s *Service) Get(ctx context.Context, id int64) (*Reminder, error) {
	return s.repo.Get(ctx, id)
}

// Create validates input and inserts a new reminder.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Reminder, error) {
	rem := Reminder{
		Title:       input.Title,
		Message:     input.Message,
		Date:        input.Date,
		IsRecurring: input.IsRecurring,
		Frequency:   input.Frequency,
		IsActive:    input.IsActive,
		CreatedAt:   s.now(),
	}
	if err := validate(rem); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, rem)
}

// Update merges the patch into the stored reminder and persists the result.
// CreatedAt never changes.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Reminder, error) {
	rem, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		rem.Title = *patch.Title
	}
	if patch.Message != nil {
		rem.Message = *patch.Message
	}
	if patch.Date != nil {
		rem.Date = *patch.Date
	}
	if patch.IsRecurring != nil {
		rem.IsRecurring = *patch.IsRecurring
		if !rem.IsRecurring {
			rem.Frequency = ""
		}
	}
	if patch.Frequency != nil {
		rem.Frequency = *patch.Frequency
	}
	if patch.IsActive != nil {
		rem.IsActive = *patch.IsActive
	}

	if err := validate(*rem); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// Delete removes a reminder.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validate(rem Reminder) error {
	if rem.Title == "" {
		return fmt.Errorf("%w: title required", ErrValidation)
	}
	if rem.IsRecurring {
		if rem.Frequency == "" {
			return fmt.Errorf("%w: frequency required for recurring reminders", ErrValidation)
		}
		if !ValidFrequency(rem.Frequency) {
			return fmt.Errorf("%w: unknown frequency %q", ErrValidation, rem.Frequency)
		}
	} else if rem.Frequency != "" {
		return fmt.Errorf("%w: frequency only allowed for recurring reminders", ErrValidation)
	}
	return nil
}
