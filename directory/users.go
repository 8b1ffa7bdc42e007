package directory

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jinalkathiriya/Healthcare/models"
)

// Users lists every patient record.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches a single patient record, cached briefly like doctor profiles.
func (c *Client) User(ctx context.Context, id models.FlexID) (models.User, error) {
	key := "user:" + id.String()
	if cached, ok := c.profiles.Get(key); ok {
		return cached.(models.User), nil
	}

	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id.String(), nil, nil, &user); err != nil {
		return models.User{}, err
	}
	c.profiles.SetDefault(key, user)
	return user, nil
}

// CreateUser adds a patient record at sign-up.
func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/users", nil, user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

// UpdateUser replaces the patient record (profile edit).
func (c *Client) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+user.ID.String(), nil, user, &updated); err != nil {
		return models.User{}, err
	}
	c.profiles.Delete("user:" + user.ID.String())
	return updated, nil
}

// UserByEmail resolves a patient by the email query filter. An empty result
// set maps to ErrNotFound.
func (c *Client) UserByEmail(ctx context.Context, email string) (models.User, error) {
	query := url.Values{"email": {email}}
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &users); err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrNotFound
	}
	return users[0], nil
}

// Login matches a patient by plaintext (email, password) equality, the only
// credential check the backend contract offers.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	query := url.Values{"email": {email}, "password": {password}}
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &users); err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrNotFound
	}
	return users[0], nil
}

// AdminLogin matches an admin record by plaintext credentials.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (models.Admin, error) {
	query := url.Values{"email": {email}, "password": {password}}
	var admins []models.Admin
	if err := c.do(ctx, http.MethodGet, "/admins", query, nil, &admins); err != nil {
		return models.Admin{}, err
	}
	if len(admins) == 0 {
		return models.Admin{}, ErrNotFound
	}
	return admins[0], nil
}
