package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/models"
)

// DoctorStore is the doctor panel's view: all bookings assigned to one
// doctor, plus the accept/reject/prescription actions.
type DoctorStore struct {
	dir      *directory.Client
	log      *logrus.Logger
	doctorID models.FlexID

	appointments []models.Appointment
}

func NewDoctorStore(dir *directory.Client, doctorID models.FlexID, logger *logrus.Logger) *DoctorStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &DoctorStore{dir: dir, log: logger, doctorID: doctorID}
}

// Load fetches the full appointment set and keeps the records assigned to
// this doctor.
func (s *DoctorStore) Load(ctx context.Context) error {
	all, err := s.dir.Appointments(ctx)
	if err != nil {
		return err
	}
	filtered := all[:0]
	for _, a := range all {
		if a.DoctorID == s.doctorID {
			filtered = append(filtered, a)
		}
	}
	s.appointments = filtered
	return nil
}

// Appointments returns the current working set.
func (s *DoctorStore) Appointments() []models.Appointment {
	return s.appointments
}

// Accept marks an appointment visited and reloads from the directory.
func (s *DoctorStore) Accept(ctx context.Context, id models.FlexID) error {
	if _, err := s.dir.PatchAppointment(ctx, id, map[string]any{"status": models.StatusAccepted}); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Reject deletes the appointment record outright, the panel's reject action.
func (s *DoctorStore) Reject(ctx context.Context, id models.FlexID) error {
	if err := s.dir.DeleteAppointment(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// SetPrescription attaches prescription text and an optional report
// category, then reloads.
func (s *DoctorStore) SetPrescription(ctx context.Context, id models.FlexID, prescription, report string) error {
	fields := map[string]any{"prescription": prescription}
	if report != "" {
		fields["report"] = report
	}
	if _, err := s.dir.PatchAppointment(ctx, id, fields); err != nil {
		return err
	}
	return s.Load(ctx)
}

// DoctorDashboard is the doctor panel's header cards, recomputed from the
// in-memory set on every call.
type DoctorDashboard struct {
	Earnings     float64
	Appointments int
	Patients     int
	Latest       []models.Appointment
}

// Dashboard derives the aggregates. Earnings sums fees across appointments
// that count as visited (see models.Appointment.Visited); patients counts
// distinct user ids.
func (s *DoctorStore) Dashboard() DoctorDashboard {
	var earnings float64
	patients := make(map[models.FlexID]struct{})
	for _, a := range s.appointments {
		if a.Visited() {
			earnings += a.Fees
		}
		patients[a.UserID] = struct{}{}
	}

	return DoctorDashboard{
		Earnings:     earnings,
		Appointments: len(s.appointments),
		Patients:     len(patients),
		Latest:       latest(s.appointments, 5),
	}
}

// FilterQuery narrows the appointment table: patient-name search, a calendar
// date, and the visited / not-visited checkboxes. Both checkboxes off (or
// both on) means no status narrowing.
type FilterQuery struct {
	Search     string
	Date       string // "2006-01-02", as a date input produces
	Visited    bool
	NotVisited bool
}

// Filter applies the query to the working set, soonest first.
func (s *DoctorStore) Filter(q FilterQuery) []models.Appointment {
	var out []models.Appointment
	for _, a := range s.appointments {
		if q.Search != "" && !strings.Contains(strings.ToLower(a.PatientName), strings.ToLower(q.Search)) {
			continue
		}
		if q.Date != "" && normalizeDate(a.Date) != q.Date {
			continue
		}
		visited := strings.EqualFold(a.Status, models.StatusAccepted)
		if q.Visited != q.NotVisited {
			if q.Visited && !visited {
				continue
			}
			if q.NotVisited && visited {
				continue
			}
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime().Before(out[j].StartTime())
	})
	return out
}

// normalizeDate collapses the denormalized date string to yyyy-mm-dd so it
// can be compared with a date-input value.
func normalizeDate(date string) string {
	t, err := time.Parse("Mon Jan 02 2006", date)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// latest returns up to n appointments ordered newest first by their parsed
// date and time.
func latest(appointments []models.Appointment, n int) []models.Appointment {
	out := make([]models.Appointment, len(appointments))
	copy(out, appointments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime().After(out[j].StartTime())
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
