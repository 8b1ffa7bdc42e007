package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinalkathiriya/Healthcare/models"
)

func TestPrescriptionPDF(t *testing.T) {
	appointment := models.Appointment{
		PatientName:  "Jane Roe",
		Date:         "Mon Jan 01 2024",
		Time:         "10:30 AM",
		Fees:         150,
		Status:       models.StatusAccepted,
		Prescription: "Paracetamol 500mg, twice daily after meals for 5 days.",
		Report:       "Blood Test",
	}
	doctor := models.Doctor{Name: "Dr. Richard Brown", Speciality: "General physician"}

	data, err := PrescriptionPDF(appointment, doctor)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPrescriptionPDFWithoutPrescription(t *testing.T) {
	_, err := PrescriptionPDF(models.Appointment{}, models.Doctor{})
	assert.ErrorIs(t, err, ErrNoPrescription)
}
