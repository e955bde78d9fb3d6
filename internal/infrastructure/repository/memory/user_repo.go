package memory

import (
	"context"
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := r.store.wait(ctx, r.store.latency.Users); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entity.User{}, r.store.users...), nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		u := r.store.users[i]
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := r.store.wait(ctx, r.store.latency.Login); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return contract.ErrEmailTaken
		}
	}
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *UserRepository) UpsertUser(ctx context.Context, user *entity.User) error {
	if err := r.store.wait(ctx, r.store.latency.Profile); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if i := r.indexOf(user.ID); i >= 0 {
		r.store.users[i] = *user
		return nil
	}
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *UserRepository) SetUserActive(ctx context.Context, id string, isActive bool) error {
	if err := r.store.wait(ctx, r.store.latency.Users); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return apperror.NotFound("user", id)
	}
	r.store.users[i].IsActive = isActive
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.users[:0]
	for _, u := range r.store.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.store.users = kept
	return nil
}

func (r *UserRepository) indexOf(id string) int {
	for i, u := range r.store.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
