package services

import (
	"context"
	"errors"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/forms"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/metrics"
	"github.com/melusi-muna/login-register-forms/internal/models"
	"github.com/melusi-muna/login-register-forms/internal/storage"
)

// Outcome is what a submission produced.
//
// OK outcomes carry a success Message and an Intent. Rejected outcomes carry
// an error Message and the Reason (a *forms.ValidationError or one of the
// common sentinels) so adapters can pick a status code.
type Outcome struct {
	OK      bool
	Mode    forms.Mode
	Message forms.Message
	Intent  *Intent
	User    *models.UserRecord
	Reason  error
}

// FormService runs a submitted form through validation and into the
// credential store and session manager.
type FormService struct {
	Credentials *CredentialStore
	Sessions    *SessionManager

	metrics       *metrics.Metrics
	log           logging.Logger
	redirectDelay time.Duration
}

// NewFormService wires both stores onto store. m may be nil.
func NewFormService(store storage.Store, redirectDelay time.Duration, m *metrics.Metrics, log logging.Logger) *FormService {
	return &FormService{
		Credentials:   NewCredentialStore(store, redirectDelay),
		Sessions:      NewSessionManager(store),
		metrics:       m,
		log:           log,
		redirectDelay: redirectDelay,
	}
}

// Init prepares the store for use.
func (s *FormService) Init(ctx context.Context) error {
	return s.Credentials.Init(ctx)
}

// Submit handles one form submission. Email and full name are trimmed before
// the rules run. Rejections come back as an Outcome; the error is reserved
// for storage failures, corrupted data and unknown modes.
func (s *FormService) Submit(ctx context.Context, mode forms.Mode, raw forms.RawFields) (*Outcome, error) {
	s.log.Debug(ctx, "form submitted", "mode", mode, "email", raw.Email)

	accepted, err := forms.Validate(mode, raw.Trimmed())
	if err != nil {
		return s.reject(ctx, mode, err)
	}

	switch accepted.Mode {
	case forms.ModeRegister:
		res, err := s.Credentials.Register(ctx, accepted.Register)
		if err != nil {
			return s.reject(ctx, mode, err)
		}

		s.metrics.ObserveSubmission(string(mode), metrics.ResultAccepted)
		s.log.Info(ctx, "account registered", "email", res.User.Email)

		return &Outcome{
			OK:      true,
			Mode:    mode,
			Message: forms.Message{Kind: forms.KindSuccess, Text: msgRegistered},
			Intent:  &res.Intent,
			User:    &res.User,
		}, nil

	default:
		user, err := s.Credentials.Login(ctx, accepted.Login)
		if err != nil {
			return s.reject(ctx, mode, err)
		}
		if _, err := s.Sessions.StartSession(ctx, *user); err != nil {
			return s.reject(ctx, mode, err)
		}

		s.metrics.ObserveSubmission(string(mode), metrics.ResultAccepted)
		s.metrics.ObserveSession()
		s.log.Info(ctx, "login succeeded", "email", user.Email)

		return &Outcome{
			OK:      true,
			Mode:    mode,
			Message: forms.Message{Kind: forms.KindSuccess, Text: loginSuccessText(user.FullName)},
			Intent: &Intent{
				View:   ViewDashboard,
				Delay:  s.redirectDelay,
				Notice: dashboardNotice(user.FullName),
			},
			User: user,
		}, nil
	}
}

func (s *FormService) reject(ctx context.Context, mode forms.Mode, err error) (*Outcome, error) {
	if !IsRejection(err) {
		s.metrics.ObserveSubmission(string(mode), metrics.ResultError)
		s.log.Error(ctx, "submission failed", "mode", mode, "error", err)
		return nil, err
	}

	s.metrics.ObserveSubmission(string(mode), resultLabel(err))
	s.log.Info(ctx, "submission rejected", "mode", mode, "reason", err.Error())

	return &Outcome{
		Mode:    mode,
		Message: forms.Message{Kind: forms.KindError, Text: UserMessage(err)},
		Reason:  err,
	}, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return metrics.ResultDuplicate
	case errors.Is(err, common.ErrNoSuchUser):
		return metrics.ResultNoSuch
	case errors.Is(err, common.ErrWrongPassword):
		return metrics.ResultWrongPass
	default:
		return metrics.ResultInvalid
	}
}

// CurrentSession returns the session marker, or nil when nobody logged in.
func (s *FormService) CurrentSession(ctx context.Context) (*models.SessionMarker, error) {
	return s.Sessions.CurrentSession(ctx)
}

// Users lists the registered accounts.
func (s *FormService) Users(ctx context.Context) ([]models.UserRecord, error) {
	return s.Credentials.Users(ctx)
}

// ExistingSession is checked when the login view opens. It returns the
// "already logged in" message, or nil when there is no session.
func (s *FormService) ExistingSession(ctx context.Context) (*forms.Message, error) {
	marker, err := s.Sessions.CurrentSession(ctx)
	if err != nil || marker == nil {
		return nil, err
	}
	return &forms.Message{Kind: forms.KindSuccess, Text: alreadyLoggedInText(marker.FullName)}, nil
}

// Feedback evaluates a live edit of a password field.
func (s *FormService) Feedback(event forms.Event, password, confirm string) (forms.FieldFeedback, error) {
	return forms.Feedback(event, password, confirm)
}
