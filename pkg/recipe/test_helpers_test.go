package recipe

import (
	"Recipe-Box/domain"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("connection refused")

// fakeRepository is an in-memory gateway with failure injection.
type fakeRepository struct {
	mu      sync.Mutex
	rows    []domain.Recipe
	nextID  int64
	now     time.Time
	listErr error
	addErr  error
	delErr  error

	// entered receives one value per call that reaches the gateway;
	// block, when set, holds every call until it is closed.
	entered chan struct{}
	block   chan struct{}

	listCalls   int
	insertCalls int
	deleteCalls int
}

func newFakeRepository(rows ...domain.Recipe) *fakeRepository {
	var maxID int64
	for _, r := range rows {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return &fakeRepository{
		rows:   rows,
		nextID: maxID + 1,
		now:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepository) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeRepository) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, &domain.GatewayError{Op: "list", Message: domain.MessageFailedLoadRecipes, Err: f.listErr}
	}
	if f.rows == nil {
		return nil, nil
	}
	out := make([]domain.Recipe, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRepository) InsertOne(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error) {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.addErr != nil {
		return domain.Recipe{}, &domain.GatewayError{Op: "insert", Message: domain.MessageFailedAddRecipe, Err: f.addErr}
	}
	created := domain.Recipe{
		ID:           f.nextID,
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		CreatedAt:    f.now,
	}
	f.nextID++
	f.rows = append([]domain.Recipe{created}, f.rows...)
	return created, nil
}

func (f *fakeRepository) DeleteByID(ctx context.Context, id int64) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.delErr != nil {
		return &domain.GatewayError{Op: "delete", Message: domain.MessageFailedDeleteRecipe, Err: f.delErr}
	}
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeRepository) calls() (list, insert, del int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.insertCalls, f.deleteCalls
}

func toast() domain.Recipe {
	return domain.Recipe{
		ID:           1,
		Name:         "Toast",
		Ingredients:  "bread, butter",
		Instructions: "toast the bread",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func soup() domain.Recipe {
	return domain.Recipe{
		ID:           2,
		Name:         "Soup",
		Ingredients:  "water, salt",
		Instructions: "boil",
		CreatedAt:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func loadedStore(t *testing.T, repo *fakeRepository) RecipeStore {
	t.Helper()
	s := NewRecipeStore(repo)
	require.NoError(t, s.Load(context.Background()))
	return s
}

// blockingRepository returns a repository whose calls park until release is called.
func blockingRepository(rows ...domain.Recipe) (*fakeRepository, func()) {
	repo := newFakeRepository(rows...)
	repo.entered = make(chan struct{}, 8)
	repo.block = make(chan struct{})
	return repo, func() { close(repo.block) }
}
