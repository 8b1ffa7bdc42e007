// Package reports renders printable documents for the doctor panel.
package reports

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jinalkathiriya/Healthcare/models"
)

// ErrNoPrescription is returned when the appointment has nothing to print.
var ErrNoPrescription = errors.New("reports: appointment has no prescription")

// PrescriptionPDF renders an A4 summary of a prescribed appointment: clinic
// header, the appointment details and the prescription text, plus the report
// category when one was requested.
func PrescriptionPDF(appointment models.Appointment, doctor models.Doctor) ([]byte, error) {
	if appointment.Prescription == "" {
		return nil, ErrNoPrescription
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 128)
	pdf.CellFormat(0, 10, "Healthcare - Clinic Appointment Booking", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Prescription Summary", "", 1, "C", false, 0, "")

	// Appointment details section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Appointment Details", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Doctor", doctor.Name, true)
	addDetail(pdf, "Speciality", doctor.Speciality, true)
	addDetail(pdf, "Patient", appointment.PatientName, true)
	addDetail(pdf, "Date", appointment.Date, true)
	addDetail(pdf, "Time", appointment.Time, true)
	addDetail(pdf, "Fees", fmt.Sprintf("%.2f", appointment.Fees), false)
	addDetail(pdf, "Status", appointment.Status, false)

	// Prescription text
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Prescription", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, appointment.Prescription, "1", "L", false)

	if appointment.Report != "" {
		pdf.SetFont("Arial", "B", 11)
		addDetail(pdf, "Report Required", appointment.Report, false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "This is a computer generated document", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addDetail adds one label/value row.
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
