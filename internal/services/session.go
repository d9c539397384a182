package services

import (
	"context"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/storage"
)

// SessionManager owns the single marker under common.CurrentUserKey. There is
// no expiry and no logout.
type SessionManager struct {
	store storage.Store
}

func NewSessionManager(store storage.Store) *SessionManager {
	return &SessionManager{store: store}
}

// StartSession overwrites the marker with user and the current time.
func (m *SessionManager) StartSession(ctx context.Context, user models.UserRecord) (*models.SessionMarker, error) {
	marker := &models.SessionMarker{
		Email:      user.Email,
		FullName:   user.FullName,
		LoggedInAt: models.NewTimestamp(timeNow()),
	}
	if err := writeJSON(ctx, m.store, common.CurrentUserKey, marker); err != nil {
		return nil, err
	}
	return marker, nil
}

// CurrentSession returns the marker, or (nil, nil) when nobody logged in.
func (m *SessionManager) CurrentSession(ctx context.Context) (*models.SessionMarker, error) {
	var marker models.SessionMarker
	ok, err := readJSON(ctx, m.store, common.CurrentUserKey, &marker)
	if err != nil || !ok {
		return nil, err
	}
	return &marker, nil
}
