package dirstub

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinalkathiriya/Healthcare/models"
)

// listAppointments honours the userId query filter the patient portal uses.
func (s *Stub) listAppointments(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := c.Query("userId")

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		if userID != "" && a.UserID.String() != userID {
			continue
		}
		out = append(out, a)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Stub) createAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.BindJSON(&appointment); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if appointment.ID == "" {
		appointment.ID = newID()
	}
	// No conflict check here on purpose: the backend contract has none,
	// only the client-side pre-check guards the slot.
	s.appointments = append(s.appointments, appointment)
	s.save()
	c.JSON(http.StatusCreated, appointment)
}

func (s *Stub) patchAppointment(c *gin.Context) {
	var fields map[string]json.RawMessage
	if err := c.BindJSON(&fields); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := models.FlexID(c.Param("id"))
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			merged, err := mergePatch(s.appointments[i], fields)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var appointment models.Appointment
			if err := json.Unmarshal(merged, &appointment); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			appointment.ID = id
			s.appointments[i] = appointment
			s.save()
			c.JSON(http.StatusOK, appointment)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
}

func (s *Stub) deleteAppointment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.FlexID(c.Param("id"))
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			s.save()
			c.JSON(http.StatusOK, gin.H{})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
}
