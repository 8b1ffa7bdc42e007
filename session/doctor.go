package session

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/localstore"
	"github.com/jinalkathiriya/Healthcare/models"
)

const (
	doctorTokenKey   = "dToken"
	doctorProfileKey = "doctor"
)

// DoctorSession is the doctor panel's identity holder. The panel has no
// login endpoint of its own: it scans the doctor list and matches
// credentials client-side.
type DoctorSession struct {
	dir   *directory.Client
	local *localstore.Store
	log   *logrus.Logger

	token  string
	doctor *models.Doctor
}

func NewDoctorSession(dir *directory.Client, local *localstore.Store, logger *logrus.Logger) *DoctorSession {
	if logger == nil {
		logger = logrus.New()
	}
	return &DoctorSession{dir: dir, local: local, log: logger}
}

// Login fetches all doctors and matches the trimmed, case-insensitive email
// with an exact plaintext password. The doctor's record id doubles as the
// token.
func (s *DoctorSession) Login(ctx context.Context, email, password string) error {
	doctors, err := s.dir.Doctors(ctx)
	if err != nil {
		return err
	}

	want := trimmedLower(email)
	for i := range doctors {
		d := doctors[i]
		if trimmedLower(d.Email) == want && d.Password == strings.TrimSpace(password) {
			s.token = d.ID.String()
			s.doctor = &d
			s.persist()
			s.log.WithField("doctorId", d.ID).Info("doctor logged in")
			return nil
		}
	}
	return ErrInvalidCredentials
}

// Restore re-enters LoggedIn from the persisted token and profile snapshot,
// re-resolving the doctor by stored email so the snapshot is never stale.
// Any failure leaves the session LoggedOut with storage cleared.
func (s *DoctorSession) Restore(ctx context.Context) {
	s.token = ""
	s.doctor = nil
	if s.local == nil {
		return
	}

	var token string
	var stored models.Doctor
	if !s.local.Get(doctorTokenKey, &token) || !s.local.Get(doctorProfileKey, &stored) || stored.Email == "" {
		s.clear()
		return
	}

	doctors, err := s.dir.Doctors(ctx)
	if err != nil {
		s.log.WithField("error", err).Warn("could not restore doctor session")
		return
	}
	for i := range doctors {
		if trimmedLower(doctors[i].Email) == trimmedLower(stored.Email) {
			s.token = token
			s.doctor = &doctors[i]
			s.persist()
			return
		}
	}

	// The backing record is gone; do not present the stale snapshot.
	s.clear()
}

// UpdateProfile writes the edited profile through and refreshes both the
// snapshot and the persisted copy.
func (s *DoctorSession) UpdateProfile(ctx context.Context, doctor models.Doctor) error {
	updated, err := s.dir.UpdateDoctor(ctx, doctor)
	if err != nil {
		return err
	}
	s.doctor = &updated
	s.persist()
	return nil
}

// Logout clears the token and profile, in memory and on disk.
func (s *DoctorSession) Logout() {
	s.token = ""
	s.doctor = nil
	s.clear()
}

func (s *DoctorSession) LoggedIn() bool { return s.doctor != nil }

func (s *DoctorSession) Token() string { return s.token }

// Doctor returns the profile snapshot, nil when logged out.
func (s *DoctorSession) Doctor() *models.Doctor { return s.doctor }

func (s *DoctorSession) persist() {
	if s.local == nil || s.doctor == nil {
		return
	}
	if err := s.local.Set(doctorTokenKey, s.token); err != nil {
		s.log.WithField("error", err).Error("failed to persist doctor token")
	}
	if err := s.local.Set(doctorProfileKey, s.doctor); err != nil {
		s.log.WithField("error", err).Error("failed to persist doctor profile")
	}
}

func (s *DoctorSession) clear() {
	if s.local == nil {
		return
	}
	s.local.Remove(doctorTokenKey)
	s.local.Remove(doctorProfileKey)
}
