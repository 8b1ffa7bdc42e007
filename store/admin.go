package store

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/models"
)

// AdminStore is the admin panel's unfiltered view of the appointment
// collection plus doctor management actions.
type AdminStore struct {
	dir *directory.Client
	log *logrus.Logger

	appointments []models.Appointment
}

func NewAdminStore(dir *directory.Client, logger *logrus.Logger) *AdminStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &AdminStore{dir: dir, log: logger}
}

// Load fetches every appointment, latest first.
func (s *AdminStore) Load(ctx context.Context) error {
	all, err := s.dir.Appointments(ctx)
	if err != nil {
		return err
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	s.appointments = all
	return nil
}

// Appointments returns the current working set.
func (s *AdminStore) Appointments() []models.Appointment {
	return s.appointments
}

// Cancel deletes the appointment record and reloads.
func (s *AdminStore) Cancel(ctx context.Context, id models.FlexID) error {
	if err := s.dir.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// ChangeAvailability flips the doctor's availability flag. The flag is
// independent of schedule occupancy.
func (s *AdminStore) ChangeAvailability(ctx context.Context, doctorID models.FlexID) error {
	doctor, err := s.dir.Doctor(ctx, doctorID)
	if err != nil {
		return err
	}
	_, err = s.dir.PatchDoctor(ctx, doctorID, map[string]any{"available": !doctor.Available})
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"doctorId":  doctorID,
		"available": !doctor.Available,
	}).Info("doctor availability changed")
	return nil
}

// UpdateDoctor replaces a doctor record from the admin edit form.
func (s *AdminStore) UpdateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	return s.dir.UpdateDoctor(ctx, doctor)
}

// AdminDashboard is the admin landing page's counters.
type AdminDashboard struct {
	TotalDoctors     int
	AvailableDoctors int
	Appointments     int
	Patients         int
	Latest           []models.Appointment
}

// Dashboard fetches doctors and users for the counters; the appointment
// figures come from the loaded working set.
func (s *AdminStore) Dashboard(ctx context.Context) (AdminDashboard, error) {
	doctors, err := s.dir.Doctors(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	users, err := s.dir.Users(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}

	available := 0
	for _, d := range doctors {
		if d.Available {
			available++
		}
	}

	dash := AdminDashboard{
		TotalDoctors:     len(doctors),
		AvailableDoctors: available,
		Appointments:     len(s.appointments),
		Patients:         len(users),
		Latest:           latest(s.appointments, 5),
	}
	return dash, nil
}
