package directory

import (
	"context"
	"net/http"

	"github.com/jinalkathiriya/Healthcare/models"
)

// Doctors lists every doctor. The list is deliberately uncached so that an
// availability toggle from the admin panel shows up on the next fetch.
func (c *Client) Doctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// Doctor fetches a single doctor, serving repeat reads from the profile
// cache while the entry is fresh.
func (c *Client) Doctor(ctx context.Context, id models.FlexID) (models.Doctor, error) {
	key := "doctor:" + id.String()
	if cached, ok := c.profiles.Get(key); ok {
		return cached.(models.Doctor), nil
	}

	var doctor models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctors/"+id.String(), nil, nil, &doctor); err != nil {
		return models.Doctor{}, err
	}
	c.profiles.SetDefault(key, doctor)
	return doctor, nil
}

// CreateDoctor adds a doctor record (the admin "add doctor" flow).
func (c *Client) CreateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	var created models.Doctor
	if err := c.do(ctx, http.MethodPost, "/doctors", nil, doctor, &created); err != nil {
		return models.Doctor{}, err
	}
	return created, nil
}

// UpdateDoctor replaces the doctor record (profile edit forms use PUT).
func (c *Client) UpdateDoctor(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	var updated models.Doctor
	if err := c.do(ctx, http.MethodPut, "/doctors/"+doctor.ID.String(), nil, doctor, &updated); err != nil {
		return models.Doctor{}, err
	}
	c.profiles.Delete("doctor:" + doctor.ID.String())
	return updated, nil
}

// PatchDoctor applies a partial update, used for the availability toggle.
func (c *Client) PatchDoctor(ctx context.Context, id models.FlexID, fields map[string]any) (models.Doctor, error) {
	var updated models.Doctor
	if err := c.do(ctx, http.MethodPatch, "/doctors/"+id.String(), nil, fields, &updated); err != nil {
		return models.Doctor{}, err
	}
	c.profiles.Delete("doctor:" + id.String())
	return updated, nil
}

// DeleteDoctor removes a doctor record.
func (c *Client) DeleteDoctor(ctx context.Context, id models.FlexID) error {
	if err := c.do(ctx, http.MethodDelete, "/doctors/"+id.String(), nil, nil, nil); err != nil {
		return err
	}
	c.profiles.Delete("doctor:" + id.String())
	return nil
}
