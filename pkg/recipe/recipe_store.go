package recipe

import (
	"Recipe-Box/domain"
	"context"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// RecipeStore is the in-memory mirror of the recipes table owned by the
	// view shell. Gateway calls run outside the lock; each result is applied
	// atomically once it lands.
	RecipeStore interface {
		Load(ctx context.Context) error
		Add(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error)
		Remove(ctx context.Context, id int64) error
		Recipes() []domain.Recipe
		Error() string
		Loading() bool
		Deleting(id int64) bool
		Dispose()
	}

	recipeStore struct {
		recipeRepository RecipeRepository

		mu           sync.RWMutex
		recipes      []domain.Recipe
		errMessage   string
		loaded       bool
		pendingLoads int
		deleting     map[int64]bool
		disposed     bool
	}
)

func NewRecipeStore(recipeRepository RecipeRepository) RecipeStore {
	return &recipeStore{
		recipeRepository: recipeRepository,
		recipes:          []domain.Recipe{},
		deleting:         make(map[int64]bool),
	}
}

func (s *recipeStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return domain.ErrStoreDisposed
	}
	s.pendingLoads++
	s.errMessage = ""
	s.mu.Unlock()

	recipes, err := s.recipeRepository.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLoads--
	s.loaded = true
	if s.disposed {
		return domain.ErrStoreDisposed
	}
	if err != nil {
		return s.fail("load", domain.MessageFailedLoadRecipes, err)
	}

	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	s.recipes = recipes
	return nil
}

func (s *recipeStore) Add(ctx context.Context, req domain.NewRecipeRequest) (domain.Recipe, error) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return domain.Recipe{}, domain.ErrStoreDisposed
	}
	s.errMessage = ""
	s.mu.Unlock()

	created, err := s.recipeRepository.InsertOne(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return domain.Recipe{}, domain.ErrStoreDisposed
	}
	if err != nil {
		return domain.Recipe{}, s.fail("add", domain.MessageFailedAddRecipe, err)
	}

	next := make([]domain.Recipe, 0, len(s.recipes)+1)
	next = append(next, created)
	for _, r := range s.recipes {
		if r.ID != created.ID {
			next = append(next, r)
		}
	}
	s.recipes = next
	return created, nil
}

func (s *recipeStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return domain.ErrStoreDisposed
	}
	if s.deleting[id] {
		s.mu.Unlock()
		return domain.ErrDeleteInFlight
	}
	s.deleting[id] = true
	s.errMessage = ""
	s.mu.Unlock()

	err := s.recipeRepository.DeleteByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.deleting, id)
	if s.disposed {
		return domain.ErrStoreDisposed
	}
	if err != nil {
		return s.fail("delete", domain.MessageFailedDeleteRecipe, err)
	}

	next := make([]domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if r.ID != id {
			next = append(next, r)
		}
	}
	s.recipes = next
	return nil
}

func (s *recipeStore) Recipes() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

func (s *recipeStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMessage
}

// Loading is true until the first load settles and while any load is outstanding.
func (s *recipeStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loaded || s.pendingLoads > 0
}

func (s *recipeStore) Deleting(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deleting[id]
}

// Dispose drops the results of outstanding and later operations.
func (s *recipeStore) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
}

// fail must be called with s.mu held.
func (s *recipeStore) fail(op, message string, err error) error {
	log.Errorf("error during recipe %s: %v", op, err)
	s.errMessage = message

	gwErr := &domain.GatewayError{Op: op, Message: message, Err: err}
	var inner *domain.GatewayError
	if errors.As(err, &inner) {
		gwErr.Err = inner.Err
	}
	return gwErr
}
