package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/localstore"
	"github.com/jinalkathiriya/Healthcare/models"
)

const tokenKey = "token"

var validate = validator.New()

// PatientSession is the patient portal's identity holder.
type PatientSession struct {
	dir   *directory.Client
	local *localstore.Store
	log   *logrus.Logger

	token string
	user  *models.User
}

func NewPatientSession(dir *directory.Client, local *localstore.Store, logger *logrus.Logger) *PatientSession {
	if logger == nil {
		logger = logrus.New()
	}
	return &PatientSession{dir: dir, local: local, log: logger}
}

// SignUpParams is the sign-up form, with the same required fields the form
// enforces.
type SignUpParams struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignUp pre-checks email uniqueness, creates the user and logs straight in,
// mirroring the portal's registration flow.
func (s *PatientSession) SignUp(ctx context.Context, p SignUpParams) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("session: invalid sign-up form: %w", err)
	}

	_, err := s.dir.UserByEmail(ctx, p.Email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, directory.ErrNotFound):
		return err
	}

	if _, err := s.dir.CreateUser(ctx, models.User{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}); err != nil {
		return err
	}

	return s.Login(ctx, p.Email, p.Password)
}

// Login matches the credentials against the directory and enters LoggedIn,
// persisting the synthesized token.
func (s *PatientSession) Login(ctx context.Context, email, password string) error {
	user, err := s.dir.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	s.token = synthesizeToken(user.ID)
	s.user = &user
	if s.local != nil {
		if err := s.local.Set(tokenKey, s.token); err != nil {
			s.log.WithField("error", err).Error("failed to persist login token")
		}
	}
	s.log.WithField("userId", user.ID).Info("patient logged in")
	return nil
}

// Restore tries to re-enter LoggedIn from the persisted token. Any failure
// to resolve the backing record leaves the session LoggedOut; a token whose
// record no longer exists is also cleared from storage.
func (s *PatientSession) Restore(ctx context.Context) {
	s.token = ""
	s.user = nil
	if s.local == nil {
		return
	}

	var token string
	if !s.local.Get(tokenKey, &token) {
		return
	}

	id, err := parseToken(token)
	if err != nil {
		s.local.Remove(tokenKey)
		return
	}

	user, err := s.dir.User(ctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			s.local.Remove(tokenKey)
		}
		s.log.WithFields(logrus.Fields{
			"userId": id,
			"error":  err,
		}).Warn("could not restore patient session")
		return
	}

	s.token = token
	s.user = &user
}

// UpdateProfile writes the edited profile through and refreshes the
// snapshot.
func (s *PatientSession) UpdateProfile(ctx context.Context, user models.User) error {
	updated, err := s.dir.UpdateUser(ctx, user)
	if err != nil {
		return err
	}
	s.user = &updated
	return nil
}

// Logout clears the token and profile, in memory and on disk.
func (s *PatientSession) Logout() {
	s.token = ""
	s.user = nil
	if s.local != nil {
		s.local.Remove(tokenKey)
	}
}

func (s *PatientSession) LoggedIn() bool { return s.user != nil }

func (s *PatientSession) Token() string { return s.token }

// User returns the profile snapshot, nil when logged out.
func (s *PatientSession) User() *models.User { return s.user }

// trimmedLower is shared by the doctor login's manual email matching.
func trimmedLower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
