// Package booking implements the slot-booking flow: validate the patient's
// selection, re-check the directory for a conflicting booking, then write the
// appointment and mirror it into local state.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/directory"
	"github.com/jinalkathiriya/Healthcare/models"
	"github.com/jinalkathiriya/Healthcare/slots"
)

var (
	// ErrNoSlotSelected means the form was submitted without picking a time.
	ErrNoSlotSelected = errors.New("booking: no time slot selected")
	// ErrSlotTaken means the directory already shows a booking for the same
	// doctor, date string and time string.
	ErrSlotTaken = errors.New("booking: this time slot is already booked")
)

var validate = validator.New()

// Request is the booking form state at submission time. User is nil for an
// unauthenticated patient.
type Request struct {
	Doctor    models.Doctor
	Day       slots.Day
	TimeLabel string `validate:"required"`
	User      *models.User
}

// Appender receives the optimistic local copy of a booking before the create
// request is issued. The patient appointment store implements it.
type Appender interface {
	Append(models.Appointment)
}

// Validator runs the pre-submission conflict check against the directory.
type Validator struct {
	Dir   *directory.Client
	Local Appender
	Log   *logrus.Logger
}

func NewValidator(dir *directory.Client, local Appender, logger *logrus.Logger) *Validator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Validator{Dir: dir, Local: local, Log: logger}
}

// Book validates the selection, re-fetches the full booked-appointment set
// and scans it for a record with equal doctorId, date string and time string.
// The comparison is exact string equality: two different textual renderings
// of the same instant count as different slots.
//
// The check and the subsequent create are not atomic, and the directory
// enforces no uniqueness: two clients racing past the check can both succeed
// and double-book the slot. That race is part of the backend contract.
func (v *Validator) Book(ctx context.Context, req Request) (models.Appointment, error) {
	if err := validate.Struct(req); err != nil {
		return models.Appointment{}, ErrNoSlotSelected
	}

	slot, err := slots.Find(req.Day, req.TimeLabel)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("booking: invalid time selected: %w", err)
	}

	appointment := models.Appointment{
		DoctorID:    req.Doctor.ID,
		DoctorName:  req.Doctor.Name,
		Speciality:  req.Doctor.Speciality,
		Image:       req.Doctor.Image,
		UserID:      "guest",
		PatientName: "John Doe",
		UserEmail:   "guest@example.com",
		Date:        slot.DateTime.Format("Mon Jan 02 2006"),
		Time:        req.TimeLabel,
		Fees:        req.Doctor.Fees,
		Status:      models.StatusPending,
	}
	if req.User != nil {
		appointment.UserID = req.User.ID
		appointment.PatientName = req.User.Name
		appointment.UserEmail = req.User.Email
	}

	// Always a fresh read, never a cached copy.
	booked, err := v.Dir.Appointments(ctx)
	if err != nil {
		return models.Appointment{}, err
	}
	for _, b := range booked {
		if b.DoctorID == appointment.DoctorID && b.Date == appointment.Date && b.Time == appointment.Time {
			v.Log.WithFields(logrus.Fields{
				"doctorId": appointment.DoctorID,
				"date":     appointment.Date,
				"time":     appointment.Time,
			}).Warn("slot already booked")
			return models.Appointment{}, ErrSlotTaken
		}
	}

	// Optimistic local append first, then the create request, in that
	// order. Neither is rolled back if the other fails.
	if v.Local != nil {
		v.Local.Append(appointment)
	}
	created, err := v.Dir.CreateAppointment(ctx, appointment)
	if err != nil {
		return models.Appointment{}, err
	}

	v.Log.WithFields(logrus.Fields{
		"doctorId": created.DoctorID,
		"date":     created.Date,
		"time":     created.Time,
	}).Info("appointment booked")
	return created, nil
}
