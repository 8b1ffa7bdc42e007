package directory

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinalkathiriya/Healthcare/dirstub"
	"github.com/jinalkathiriya/Healthcare/models"
)

func newTestClient(t *testing.T) (*dirstub.Stub, *Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	stub := dirstub.New(logger)
	srv := httptest.NewServer(stub.Router())
	t.Cleanup(srv.Close)

	return stub, NewClient(srv.URL, logger)
}

func TestDoctorCRUD(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateDoctor(ctx, models.Doctor{
		Name:       "Dr. Richard Brown",
		Speciality: "General physician",
		Fees:       150,
		Available:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := client.Doctor(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Richard Brown", got.Name)

	created.Fees = 200
	updated, err := client.UpdateDoctor(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, float64(200), updated.Fees)

	patched, err := client.PatchDoctor(ctx, created.ID, map[string]any{"available": false})
	require.NoError(t, err)
	assert.False(t, patched.Available)

	// The profile cache was invalidated by the patch.
	got, err = client.Doctor(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Equal(t, float64(200), got.Fees)

	list, err := client.Doctors(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, client.DeleteDoctor(ctx, created.ID))
	_, err = client.Doctor(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserLookupsAndLogin(t *testing.T) {
	stub, client := newTestClient(t)
	ctx := context.Background()

	stub.SeedUser(models.User{Name: "Jane Roe", Email: "jane@example.com", Password: "secret"})
	stub.SeedUser(models.User{Name: "Bob", Email: "bob@example.com", Password: "hunter2"})

	user, err := client.UserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", user.Name)

	_, err = client.UserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user, err = client.Login(ctx, "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", user.Name)

	_, err = client.Login(ctx, "jane@example.com", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminLogin(t *testing.T) {
	stub, client := newTestClient(t)
	ctx := context.Background()

	stub.SeedAdmin(models.Admin{Email: "admin@example.com", Password: "admin123"})

	admin, err := client.AdminLogin(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)

	_, err = client.AdminLogin(ctx, "admin@example.com", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentsByUserFilter(t *testing.T) {
	stub, client := newTestClient(t)
	ctx := context.Background()

	stub.SeedAppointment(models.Appointment{UserID: "u1", DoctorID: "d1", Date: "Mon Jan 01 2024", Time: "10:00 AM"})
	stub.SeedAppointment(models.Appointment{UserID: "u2", DoctorID: "d1", Date: "Mon Jan 01 2024", Time: "10:30 AM"})

	mine, err := client.AppointmentsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.FlexID("u1"), mine[0].UserID)

	all, err := client.Appointments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLegacyFieldNormalization(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	// Write a record the way an older surface did: "fee" and "isCompleted"
	// instead of the canonical names.
	body := []byte(`{"doctorId":"d1","userId":"u1","date":"Mon Jan 01 2024","time":"10:00 AM","fee":"80","isCompleted":true,"status":"pending"}`)
	resp, err := http.Post(client.BaseURL+"/booked-appointment", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()

	all, err := client.Appointments(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, float64(80), all[0].Fees)
	assert.True(t, all[0].Completed)
	assert.True(t, all[0].Visited())
}

func TestAppointmentPatchAndDelete(t *testing.T) {
	stub, client := newTestClient(t)
	ctx := context.Background()

	seeded := stub.SeedAppointment(models.Appointment{
		UserID: "u1", DoctorID: "d1",
		Date: "Mon Jan 01 2024", Time: "10:00 AM",
		Status: models.StatusPending, Fees: 100,
	})

	patched, err := client.PatchAppointment(ctx, seeded.ID, map[string]any{"status": models.StatusAccepted})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, patched.Status)
	assert.Equal(t, float64(100), patched.Fees, "patch must leave other fields alone")

	require.NoError(t, client.DeleteAppointment(ctx, seeded.ID))
	all, err := client.Appointments(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = client.DeleteAppointment(ctx, seeded.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
