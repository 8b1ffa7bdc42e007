package dirstub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jinalkathiriya/Healthcare/models"
)

// listUsers honours the email and password query filters the login and
// sign-up flows use.
func (s *Stub) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := c.Query("email")
	password, hasPassword := c.GetQuery("password")

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if email != "" && u.Email != email {
			continue
		}
		if hasPassword && u.Password != password {
			continue
		}
		out = append(out, u)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Stub) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.FlexID(c.Param("id"))
	for _, u := range s.users {
		if u.ID == id {
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}

func (s *Stub) createUser(c *gin.Context) {
	var user models.User
	if err := c.BindJSON(&user); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = newID()
	}
	s.users = append(s.users, user)
	s.save()
	c.JSON(http.StatusCreated, user)
}

func (s *Stub) putUser(c *gin.Context) {
	var user models.User
	if err := c.BindJSON(&user); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := models.FlexID(c.Param("id"))
	for i := range s.users {
		if s.users[i].ID == id {
			user.ID = id
			s.users[i] = user
			s.save()
			c.JSON(http.StatusOK, user)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}

// listAdmins only answers the filtered credential lookup the admin login
// performs.
func (s *Stub) listAdmins(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := c.Query("email")
	password, hasPassword := c.GetQuery("password")

	out := make([]models.Admin, 0, len(s.admins))
	for _, a := range s.admins {
		if email != "" && a.Email != email {
			continue
		}
		if hasPassword && a.Password != password {
			continue
		}
		out = append(out, a)
	}
	c.JSON(http.StatusOK, out)
}
