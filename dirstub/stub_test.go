package dirstub

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinalkathiriya/Healthcare/models"
)

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	first := New(nil)
	require.NoError(t, first.LoadFile(path), "a missing file starts empty")
	doctor := first.SeedDoctor(models.Doctor{Name: "Dr. Richard Brown", Fees: 150})
	first.SeedUser(models.User{Name: "Jane Roe", Email: "jane@example.com"})
	first.SeedAppointment(models.Appointment{DoctorID: doctor.ID, UserID: "u1", Date: "Mon Mar 02 2026", Time: "10:00 AM"})

	second := New(nil)
	require.NoError(t, second.LoadFile(path))
	assert.Len(t, second.doctors, 1)
	assert.Len(t, second.users, 1)
	assert.Len(t, second.appointments, 1)
	assert.Equal(t, doctor.ID, second.appointments[0].DoctorID)
}

func TestLoadFileNormalizesLegacyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	db := `{"doctors":[],"users":[],"admins":[],"booked-appointment":[{"id":1,"doctorId":"d1","userId":"u1","date":"Mon Mar 02 2026","time":"10:00 AM","fee":"80","isCompleted":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(db), 0o644))

	s := New(nil)
	require.NoError(t, s.LoadFile(path))
	require.Len(t, s.appointments, 1)
	assert.Equal(t, models.FlexID("1"), s.appointments[0].ID)
	assert.Equal(t, float64(80), s.appointments[0].Fees)
	assert.True(t, s.appointments[0].Completed)
}
