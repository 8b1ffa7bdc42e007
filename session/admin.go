package session

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/localstore"
	"github.com/jinalkathiriya/Healthcare/models"
)

const (
	adminTokenKey   = "aToken"
	adminProfileKey = "admin"
)

// AdminSession is the admin panel's identity holder.
type AdminSession struct {
	dir   *directory.Client
	local *localstore.Store
	log   *logrus.Logger

	token string
	admin *models.Admin
}

func NewAdminSession(dir *directory.Client, local *localstore.Store, logger *logrus.Logger) *AdminSession {
	if logger == nil {
		logger = logrus.New()
	}
	return &AdminSession{dir: dir, local: local, log: logger}
}

// Login matches the credentials against /admins. The record's own token
// field is used when present, the record id otherwise.
func (s *AdminSession) Login(ctx context.Context, email, password string) error {
	admin, err := s.dir.AdminLogin(ctx, email, password)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	token := admin.Token
	if token == "" {
		token = admin.ID.String()
	}
	s.token = token
	s.admin = &admin
	s.persist()
	s.log.WithField("adminId", admin.ID).Info("admin logged in")
	return nil
}

// Restore re-enters LoggedIn by replaying the stored credentials against the
// directory; the admin lookup endpoint only answers filtered queries. A
// record that no longer matches clears the state and leaves LoggedOut.
func (s *AdminSession) Restore(ctx context.Context) {
	s.token = ""
	s.admin = nil
	if s.local == nil {
		return
	}

	var token string
	var stored models.Admin
	if !s.local.Get(adminTokenKey, &token) || !s.local.Get(adminProfileKey, &stored) {
		s.clear()
		return
	}

	admin, err := s.dir.AdminLogin(ctx, stored.Email, stored.Password)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			s.clear()
		}
		s.log.WithField("error", err).Warn("could not restore admin session")
		return
	}

	s.token = token
	s.admin = &admin
}

// Logout clears the token and profile, in memory and on disk.
func (s *AdminSession) Logout() {
	s.token = ""
	s.admin = nil
	s.clear()
}

func (s *AdminSession) LoggedIn() bool { return s.admin != nil }

func (s *AdminSession) Token() string { return s.token }

func (s *AdminSession) persist() {
	if s.local == nil || s.admin == nil {
		return
	}
	if err := s.local.Set(adminTokenKey, s.token); err != nil {
		s.log.WithField("error", err).Error("failed to persist admin token")
	}
	if err := s.local.Set(adminProfileKey, s.admin); err != nil {
		s.log.WithField("error", err).Error("failed to persist admin profile")
	}
}

func (s *AdminSession) clear() {
	if s.local == nil {
		return
	}
	s.local.Remove(adminTokenKey)
	s.local.Remove(adminProfileKey)
}
