// Package store holds the per-actor working sets of appointments and the
// dashboard aggregates derived from them. Every mutation goes to the
// directory first and is followed by a reload; the authoritative fetch is
// what the store trusts, never a local-only edit.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/localstore"
	"github.com/jinalkathiriya/Healthcare/models"
)

// Status filters offered by the patient appointment list.
const (
	FilterAll        = "all"
	FilterVisited    = "visited"
	FilterNotVisited = "not-visited"
)

// mirrorKey is the local-storage key the appointments mirror lives under.
const mirrorKey = "appointments"

// PatientStore is the patient portal's view of their own bookings. A store
// without a user id is the unauthenticated (guest) mode, which works
// entirely off the local mirror.
type PatientStore struct {
	dir    *directory.Client
	local  *localstore.Store
	log    *logrus.Logger
	userID models.FlexID

	appointments []models.Appointment
}

func NewPatientStore(dir *directory.Client, local *localstore.Store, userID models.FlexID, logger *logrus.Logger) *PatientStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &PatientStore{dir: dir, local: local, log: logger, userID: userID}
}

// Guest reports whether the store belongs to an unauthenticated patient.
func (s *PatientStore) Guest() bool {
	return s.userID == "" || s.userID == "guest"
}

// Load refreshes the working set: the userId-filtered directory fetch for a
// logged-in patient, the local mirror for a guest.
func (s *PatientStore) Load(ctx context.Context) error {
	if s.Guest() {
		s.appointments = nil
		if s.local != nil {
			s.local.Get(mirrorKey, &s.appointments)
		}
		return nil
	}

	appointments, err := s.dir.AppointmentsByUser(ctx, s.userID)
	if err != nil {
		return err
	}
	s.appointments = appointments
	return nil
}

// Append adds an optimistic copy of a new booking and rewrites the mirror.
// The booking validator calls this just before issuing the create request.
func (s *PatientStore) Append(a models.Appointment) {
	s.appointments = append(s.appointments, a)
	s.mirror()
}

// Cancel removes the appointment at index. Guests only edit the local
// mirror; a logged-in patient issues the delete and reloads from the
// directory.
func (s *PatientStore) Cancel(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.appointments) {
		return fmt.Errorf("store: no appointment at index %d", index)
	}

	if s.Guest() {
		s.appointments = append(s.appointments[:index], s.appointments[index+1:]...)
		s.mirror()
		return nil
	}

	if err := s.dir.DeleteAppointment(ctx, s.appointments[index].ID); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Appointments returns the current working set.
func (s *PatientStore) Appointments() []models.Appointment {
	return s.appointments
}

// Filtered returns the working set newest first, narrowed by the status
// filter buttons ("visited" means accepted).
func (s *PatientStore) Filtered(filter string) []models.Appointment {
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime().After(out[j].StartTime())
	})

	if filter == "" || filter == FilterAll {
		return out
	}
	filtered := out[:0]
	for _, a := range out {
		visited := strings.EqualFold(a.Status, models.StatusAccepted)
		if (filter == FilterVisited && visited) || (filter == FilterNotVisited && !visited) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func (s *PatientStore) mirror() {
	if s.local == nil {
		return
	}
	if err := s.local.Set(mirrorKey, s.appointments); err != nil {
		s.log.WithField("error", err).Error("failed to write appointments mirror")
	}
}
