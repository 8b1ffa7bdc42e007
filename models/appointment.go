package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Booking status values written by the booking and review flows.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCancelled = "cancelled"
)

// Appointment is a booked appointment record. Doctor fields are denormalized
// copies taken at booking time for display convenience. Date and Time are the
// locale-formatted strings the booking flow produced ("Mon Jan 02 2006" and
// "03:04 PM"); slot-conflict detection compares them as strings.
type Appointment struct {
	ID           FlexID  `json:"id"`
	DoctorID     FlexID  `json:"doctorId"`
	DoctorName   string  `json:"doctorName"`
	Speciality   string  `json:"speciality"`
	Image        string  `json:"image"`
	UserID       FlexID  `json:"userId"`
	PatientName  string  `json:"patientName"`
	UserEmail    string  `json:"userEmail"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Fees         float64 `json:"fees"`
	Payment      bool    `json:"payment"`
	Status       string  `json:"status"`
	Prescription string  `json:"prescription,omitempty"`
	Report       string  `json:"report,omitempty"`
	Completed    bool    `json:"completed,omitempty"`
}

// UnmarshalJSON normalizes the inconsistent field spellings different write
// paths left behind: the fee may arrive as "fees", "fee" or "amount" (number
// or numeric string) and the completion flag as "completed" or "isCompleted".
// The canonical names are always used on the way out.
func (a *Appointment) UnmarshalJSON(b []byte) error {
	type alias Appointment
	aux := struct {
		*alias
		Fees        *flexAmount `json:"fees"`
		Fee         *flexAmount `json:"fee"`
		Amount      *flexAmount `json:"amount"`
		IsCompleted *bool       `json:"isCompleted"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	switch {
	case aux.Fees != nil:
		a.Fees = float64(*aux.Fees)
	case aux.Fee != nil:
		a.Fees = float64(*aux.Fee)
	case aux.Amount != nil:
		a.Fees = float64(*aux.Amount)
	}
	if aux.IsCompleted != nil && *aux.IsCompleted {
		a.Completed = true
	}
	return nil
}

// Visited reports whether the appointment counts as completed for dashboard
// purposes. Both status spellings and the completed flag are honoured.
func (a Appointment) Visited() bool {
	s := strings.ToLower(a.Status)
	return s == StatusAccepted || s == "visited" || a.Completed
}

// StartTime parses the denormalized date and time strings back into an
// instant for ordering. Unparsable values sort as the zero time.
func (a Appointment) StartTime() time.Time {
	t, err := time.Parse("Mon Jan 02 2006 03:04 PM", a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
