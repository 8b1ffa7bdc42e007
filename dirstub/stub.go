// Package dirstub is a development stand-in for the Directory Service: the
// four REST collections the surfaces consume, held in memory with optional
// db.json persistence, the way the original app ran against a json-server
// style data store.
//
// It deliberately enforces no uniqueness on (doctorId, date, time): the
// booking flow's check-then-act race exists in the real backend contract and
// must stay reproducible here.
package dirstub

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jinalkathiriya/Healthcare/models"
)

// Stub holds the collections behind one lock; handlers are the only
// accessors at runtime.
type Stub struct {
	log *logrus.Logger

	mu           sync.Mutex
	dbFile       string
	doctors      []models.Doctor
	users        []models.User
	admins       []models.Admin
	appointments []models.Appointment
}

func New(logger *logrus.Logger) *Stub {
	if logger == nil {
		logger = logrus.New()
	}
	return &Stub{log: logger}
}

// dbFileShape is the db.json layout: one array per collection, keyed by the
// route name.
type dbFileShape struct {
	Doctors      []models.Doctor      `json:"doctors"`
	Users        []models.User        `json:"users"`
	Admins       []models.Admin       `json:"admins"`
	Appointments []models.Appointment `json:"booked-appointment"`
}

// LoadFile reads the collections from a db.json file and keeps writing back
// to it after every mutation. A missing file starts empty.
func (s *Stub) LoadFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dbFile = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var db dbFileShape
	if err := json.Unmarshal(data, &db); err != nil {
		return err
	}
	s.doctors = db.Doctors
	s.users = db.Users
	s.admins = db.Admins
	s.appointments = db.Appointments
	s.log.WithField("file", path).Info("directory stub loaded")
	return nil
}

// save persists the collections, best effort. Callers hold the lock.
func (s *Stub) save() {
	if s.dbFile == "" {
		return
	}
	db := dbFileShape{
		Doctors:      s.doctors,
		Users:        s.users,
		Admins:       s.admins,
		Appointments: s.appointments,
	}
	data, err := json.MarshalIndent(db, "", "  ")
	if err == nil {
		err = os.WriteFile(s.dbFile, data, 0o644)
	}
	if err != nil {
		s.log.WithField("error", err).Error("failed to persist directory stub")
	}
}

func newID() models.FlexID {
	return models.FlexID(uuid.NewString())
}

// Seed helpers used by tests and the dev binary.

func (s *Stub) SeedDoctor(d models.Doctor) models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = newID()
	}
	s.doctors = append(s.doctors, d)
	s.save()
	return d
}

func (s *Stub) SeedUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = newID()
	}
	s.users = append(s.users, u)
	s.save()
	return u
}

func (s *Stub) SeedAdmin(a models.Admin) models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	s.admins = append(s.admins, a)
	s.save()
	return a
}

func (s *Stub) SeedAppointment(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = newID()
	}
	s.appointments = append(s.appointments, a)
	s.save()
	return a
}

// Router wires the REST routes the surfaces consume.
func (s *Stub) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/doctors", s.listDoctors)
	r.POST("/doctors", s.createDoctor)
	r.GET("/doctors/:id", s.getDoctor)
	r.PUT("/doctors/:id", s.putDoctor)
	r.PATCH("/doctors/:id", s.patchDoctor)
	r.DELETE("/doctors/:id", s.deleteDoctor)

	r.GET("/users", s.listUsers)
	r.POST("/users", s.createUser)
	r.GET("/users/:id", s.getUser)
	r.PUT("/users/:id", s.putUser)

	r.GET("/admins", s.listAdmins)

	r.GET("/booked-appointment", s.listAppointments)
	r.POST("/booked-appointment", s.createAppointment)
	r.PATCH("/booked-appointment/:id", s.patchAppointment)
	r.DELETE("/booked-appointment/:id", s.deleteAppointment)

	return r
}
