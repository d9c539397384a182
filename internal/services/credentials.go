package services

import (
	"context"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/storage"
)

// CredentialStore persists the registered users as one JSON array under
// common.RegisteredUsersKey.
//
// Every registration reads the whole collection, appends and writes it back.
// Two concurrent registrations of the same email can both pass the duplicate
// check; the later write wins.
type CredentialStore struct {
	store         storage.Store
	redirectDelay time.Duration
}

func NewCredentialStore(store storage.Store, redirectDelay time.Duration) *CredentialStore {
	return &CredentialStore{store: store, redirectDelay: redirectDelay}
}

// RegisterResult is a successful registration and where to go next.
type RegisterResult struct {
	User   models.UserRecord
	Intent Intent
}

// Init persists an empty collection if none exists yet.
func (c *CredentialStore) Init(ctx context.Context) error {
	raw, err := c.store.Get(ctx, common.RegisteredUsersKey)
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}
	return writeJSON(ctx, c.store, common.RegisteredUsersKey, []models.UserRecord{})
}

// Users returns the stored records in registration order. An absent
// collection reads as empty.
func (c *CredentialStore) Users(ctx context.Context) ([]models.UserRecord, error) {
	users := []models.UserRecord{}
	if _, err := readJSON(ctx, c.store, common.RegisteredUsersKey, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

// Register adds a user. It fails with common.ErrDuplicateEmail, leaving the
// collection untouched, when the email is already taken.
func (c *CredentialStore) Register(ctx context.Context, data forms.RegisterData) (*RegisterResult, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}
	if models.FindByEmail(users, data.Email) >= 0 {
		return nil, common.ErrDuplicateEmail
	}

	rec := models.UserRecord{
		FullName:  data.FullName,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: models.NewTimestamp(timeNow()),
	}
	users = append(users, rec)

	if err := writeJSON(ctx, c.store, common.RegisteredUsersKey, users); err != nil {
		return nil, err
	}

	return &RegisterResult{
		User:   rec,
		Intent: Intent{View: ViewLogin, Delay: c.redirectDelay},
	}, nil
}

// Login returns the record whose email and password match exactly.
func (c *CredentialStore) Login(ctx context.Context, data forms.LoginData) (*models.UserRecord, error) {
	users, err := c.Users(ctx)
	if err != nil {
		return nil, err
	}

	i := models.FindByEmail(users, data.Email)
	if i < 0 {
		return nil, common.ErrNoSuchUser
	}
	if users[i].Password != data.Password {
		return nil, common.ErrWrongPassword
	}
	return &users[i], nil
}
