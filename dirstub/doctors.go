package dirstub

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinalkathiriya/Healthcare/models"
)

func (s *Stub) listDoctors(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Doctor, len(s.doctors))
	copy(out, s.doctors)
	c.JSON(http.StatusOK, out)
}

func (s *Stub) getDoctor(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.FlexID(c.Param("id"))
	for _, d := range s.doctors {
		if d.ID == id {
			c.JSON(http.StatusOK, d)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
}

func (s *Stub) createDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if doctor.ID == "" {
		doctor.ID = newID()
	}
	s.doctors = append(s.doctors, doctor)
	s.save()
	c.JSON(http.StatusCreated, doctor)
}

func (s *Stub) putDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := models.FlexID(c.Param("id"))
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			doctor.ID = id
			s.doctors[i] = doctor
			s.save()
			c.JSON(http.StatusOK, doctor)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
}

func (s *Stub) patchDoctor(c *gin.Context) {
	var fields map[string]json.RawMessage
	if err := c.BindJSON(&fields); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := models.FlexID(c.Param("id"))
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			merged, err := mergePatch(s.doctors[i], fields)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var doctor models.Doctor
			if err := json.Unmarshal(merged, &doctor); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			doctor.ID = id
			s.doctors[i] = doctor
			s.save()
			c.JSON(http.StatusOK, doctor)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
}

func (s *Stub) deleteDoctor(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.FlexID(c.Param("id"))
	for i := range s.doctors {
		if s.doctors[i].ID == id {
			s.doctors = append(s.doctors[:i], s.doctors[i+1:]...)
			s.save()
			c.JSON(http.StatusOK, gin.H{})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "doctor not found"})
}

// mergePatch overlays the submitted fields onto the existing record, the
// partial-update semantics a json-server PATCH has.
func mergePatch(existing any, fields map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(existing)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(base, &m); err != nil {
		return nil, err
	}
	for k, v := range fields {
		m[k] = v
	}
	return json.Marshal(m)
}
