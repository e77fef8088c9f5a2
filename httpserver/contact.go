package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterContactRoutes() {
	s.Router.GET("/api/contacts", s.handleListContacts)
	s.Router.POST("/api/contacts", s.handleAddContact)
	s.Router.GET("/api/contacts/:name", s.handleGetContact)
	s.Router.DELETE("/api/contacts/:name", s.handleDeleteContact)
	s.Router.POST("/api/contacts/:name/phones", s.handleAddPhone)
	s.Router.PUT("/api/contacts/:name/phones", s.handleChangePhone)
	s.Router.DELETE("/api/contacts/:name/phones/:phone", s.handleRemovePhone)
	s.Router.PUT("/api/contacts/:name/birthday", s.handleSetBirthday)
	s.Router.GET("/api/birthdays", s.handleUpcomingBirthdays)
}

// handleAddContact adds a phone to the named contact, creating the
// contact when it does not exist yet.
func (s *Server) handleAddContact(c echo.Context) error {
	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := s.Contacts.AddContact(c.Request().Context(), req.Name, req.Phone)
	if err != nil {
		return err
	}

	if created {
		return writeSuccess(c, http.StatusCreated, map[string]string{
			"status": "created",
		})
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "updated",
	})
}

func (s *Server) handleListContacts(c echo.Context) error {
	contacts, err := s.Contacts.Contacts(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, contacts)
}

func (s *Server) handleGetContact(c echo.Context) error {
	contact, err := s.Contacts.Contact(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	if err := s.Contacts.DeleteContact(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "deleted",
	})
}

func (s *Server) handleAddPhone(c echo.Context) error {
	var req AddPhoneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.Contacts.AddPhone(c.Request().Context(), c.Param("name"), req.Phone); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, map[string]string{
		"status": "created",
	})
}

func (s *Server) handleChangePhone(c echo.Context) error {
	var req ChangePhoneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.Contacts.ChangePhone(c.Request().Context(), c.Param("name"), req.OldPhone, req.NewPhone); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "updated",
	})
}

func (s *Server) handleRemovePhone(c echo.Context) error {
	if err := s.Contacts.RemovePhone(c.Request().Context(), c.Param("name"), c.Param("phone")); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "deleted",
	})
}

func (s *Server) handleSetBirthday(c echo.Context) error {
	var req SetBirthdayRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.Contacts.SetBirthday(c.Request().Context(), c.Param("name"), req.Birthday); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "updated",
	})
}

func (s *Server) handleUpcomingBirthdays(c echo.Context) error {
	upcoming, err := s.Contacts.UpcomingBirthdays(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, upcoming)
}
