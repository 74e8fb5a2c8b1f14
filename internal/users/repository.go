package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/honeyshop/honeyshop-backend/pkg/errors"
	"github.com/honeyshop/honeyshop-backend/pkg/kvstore"
)

const defaultPutAttempts = 5

// User is one stored account. The password never leaves this package as
// anything but an argon2id hash.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignIn   *time.Time `json:"last_sign_in,omitempty"`
}

// Repository persists the user collection as one snapshot.
type Repository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	RecordSignIn(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context) ([]User, error)
}

type repository struct {
	store    kvstore.Store
	attempts int
}

// NewRepository builds a user repository over the provided snapshot store.
func NewRepository(store kvstore.Store, putAttempts int) (Repository, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if putAttempts <= 0 {
		putAttempts = defaultPutAttempts
	}
	return &repository{store: store, attempts: putAttempts}, nil
}

// NormalizeEmail lower-cases and trims an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *repository) Create(ctx context.Context, user User) error {
	if user.ID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user.Email = NormalizeEmail(user.Email)
	if user.Email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user email is required")
	}
	if user.PasswordHash == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user password hash is required")
	}

	return r.update(ctx, func(all []User) ([]User, error) {
		for i := range all {
			if all[i].Email == user.Email {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account with this email already exists")
			}
		}
		return append(all, user), nil
	})
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	email = NormalizeEmail(email)
	all, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Email == email {
			user := all[i]
			return &user, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	all, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			user := all[i]
			return &user, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func (r *repository) RecordSignIn(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(ctx, func(all []User) ([]User, error) {
		for i := range all {
			if all[i].ID == id {
				signedIn := at.UTC()
				all[i].LastSignIn = &signedIn
				return all, nil
			}
		}
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	})
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	all, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (r *repository) load(ctx context.Context) ([]User, int64, error) {
	snap, err := r.store.Get(ctx, kvstore.KeyUsers)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read users snapshot")
	}
	if !snap.Exists() {
		return nil, 0, nil
	}

	var all []User
	if err := json.Unmarshal(snap.Data, &all); err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode users snapshot")
	}
	return all, snap.Version, nil
}

func (r *repository) update(ctx context.Context, mutate func(all []User) ([]User, error)) error {
	for attempt := 0; attempt < r.attempts; attempt++ {
		all, version, err := r.load(ctx)
		if err != nil {
			return err
		}

		next, err := mutate(all)
		if err != nil {
			return err
		}

		data, err := json.Marshal(next)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode users snapshot")
		}
		if _, err := r.store.Put(ctx, kvstore.KeyUsers, data, version); err != nil {
			if errors.Is(err, kvstore.ErrVersionConflict) {
				continue
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write users snapshot")
		}
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeConflict, "users snapshot contention, retry the request")
}
