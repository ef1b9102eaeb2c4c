package appointments

import (
	"bytes"
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"github.com/lemerle/medassist/internal/apperr"
	"github.com/lemerle/medassist/internal/locale"
)

// Appointment is an accepted booking. It is never updated or deleted.
type Appointment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	ServiceID int64     `json:"service_id"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceRef is the selected service id. Forms send it either as a string
// or as a bare number.
type ServiceRef string

func (s *ServiceRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = ServiceRef(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = ServiceRef(n.String())
	return nil
}

// BookRequest is the body of POST /api/appointments.
type BookRequest struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Date    string     `json:"date"`
	Time    string     `json:"time"`
	Service ServiceRef `json:"service"`
	Message string     `json:"message"`
}

func (r *BookRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
	r.Service = ServiceRef(strings.TrimSpace(string(r.Service)))
	r.Message = strings.TrimSpace(r.Message)
}

// checkFields verifies presence and shape of the contact fields. Slot rules
// are checked separately by the Schedule.
func (r *BookRequest) checkFields() error {
	switch {
	case r.Name == "":
		return apperr.Validation("name", locale.KeyMissingFields)
	case r.Email == "":
		return apperr.Validation("email", locale.KeyMissingFields)
	case r.Phone == "":
		return apperr.Validation("phone", locale.KeyMissingFields)
	case r.Date == "":
		return apperr.Validation("date", locale.KeyMissingFields)
	case r.Time == "":
		return apperr.Validation("time", locale.KeyMissingFields)
	case r.Service == "":
		return apperr.Validation("service", locale.KeyMissingFields)
	}
	if !validEmail(r.Email) {
		return apperr.Validation("email", locale.KeyInvalidEmail)
	}
	return nil
}

func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Bob <bob@x.com>".
	return parsed.Address == addr && strings.Contains(addr[strings.LastIndex(addr, "@"):], ".")
}

// ServiceOption is one entry of the booking form's service dropdown.
type ServiceOption struct {
	ID      int64  `json:"id"`
	TitleFR string `json:"title_fr"`
	TitleEN string `json:"title_en"`
	TitleAR string `json:"title_ar"`
}
