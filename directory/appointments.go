package directory

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jinalkathiriya/Healthcare/models"
)

// Appointments fetches the complete booked-appointment collection. Always a
// live read; the slot-conflict pre-check depends on it.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/booked-appointment", nil, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// AppointmentsByUser fetches the appointments booked by one patient via the
// userId query filter.
func (c *Client) AppointmentsByUser(ctx context.Context, userID models.FlexID) ([]models.Appointment, error) {
	query := url.Values{"userId": {userID.String()}}
	var appointments []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/booked-appointment", query, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// CreateAppointment writes a new appointment record.
func (c *Client) CreateAppointment(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	var created models.Appointment
	if err := c.do(ctx, http.MethodPost, "/booked-appointment", nil, appointment, &created); err != nil {
		return models.Appointment{}, err
	}
	return created, nil
}

// PatchAppointment applies a partial update (accept, prescription, report).
func (c *Client) PatchAppointment(ctx context.Context, id models.FlexID, fields map[string]any) (models.Appointment, error) {
	var updated models.Appointment
	if err := c.do(ctx, http.MethodPatch, "/booked-appointment/"+id.String(), nil, fields, &updated); err != nil {
		return models.Appointment{}, err
	}
	return updated, nil
}

// DeleteAppointment removes an appointment record (the reject flow).
func (c *Client) DeleteAppointment(ctx context.Context, id models.FlexID) error {
	return c.do(ctx, http.MethodDelete, "/booked-appointment/"+id.String(), nil, nil, nil)
}
