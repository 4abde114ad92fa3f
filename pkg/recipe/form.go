package recipe

import (
	"Recipe-Box/domain"
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
)

type (
	RecipeAdder interface {
		Add(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error)
	}

	// EntryForm holds the three text fields of a new recipe and guards
	// against double submission.
	EntryForm struct {
		validator *validator.Validate

		mu         sync.Mutex
		fields     domain.NewRecipeRequest
		submitting bool
	}
)

func NewEntryForm(validator *validator.Validate) *EntryForm {
	return &EntryForm{validator: validator}
}

func (f *EntryForm) SetFields(req domain.NewRecipeRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = req
}

func (f *EntryForm) Fields() domain.NewRecipeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *EntryForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the fields and hands them to adder. Nothing is sent when
// a submission is already in flight or a field is empty. Fields are cleared
// only after a successful add; the submitting flag is always released.
func (f *EntryForm) Submit(ctx context.Context, adder RecipeAdder) (domain.Recipe, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.Recipe{}, domain.ErrSubmissionInFlight
	}
	req := f.fields
	if err := f.validator.Struct(req); err != nil {
		f.mu.Unlock()
		return domain.Recipe{}, err
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	created, err := adder.Add(ctx, req)
	if err != nil {
		return domain.Recipe{}, err
	}

	f.mu.Lock()
	f.fields = domain.NewRecipeRequest{}
	f.mu.Unlock()
	return created, nil
}
