package services

import (
	"errors"
	"strings"

	"luxelane/internal/domain"
	"luxelane/internal/repos"
	"luxelane/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("name, email, and message are required")
	ErrBadEmail      = errors.New("enter a valid email address")
	ErrBadPhone      = errors.New("enter a valid phone number")
)

type ContactService struct {
	Contacts *repos.ContactRepo
}

func NewContactService(contacts *repos.ContactRepo) *ContactService {
	return &ContactService{Contacts: contacts}
}

// Submit validates and stores a contact-form submission. Phone is
// optional and stored as NULL when absent.
func (s *ContactService) Submit(name, email, phone, message string) (domain.Contact, error) {
	name, okName := validate.Text(name, 100)
	message, okMsg := validate.Text(message, 4000)
	email, okEmailPresent := validate.Text(email, 100)
	if !okName || !okMsg || !okEmailPresent {
		return domain.Contact{}, ErrMissingFields
	}
	email, okEmail := validate.Email(email)
	if !okEmail {
		return domain.Contact{}, ErrBadEmail
	}

	c := domain.Contact{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		p, ok := validate.Phone(phone)
		if !ok {
			return domain.Contact{}, ErrBadPhone
		}
		c.Phone = &p
	}

	if err := s.Contacts.Insert(c); err != nil {
		return domain.Contact{}, err
	}
	// Re-read for the store-generated timestamp.
	return s.Contacts.Get(c.ID)
}

// List returns the phone-stripped admin listing, newest first.
func (s *ContactService) List() ([]domain.ContactSummary, error) {
	return s.Contacts.ListSummaries()
}

// ListFull returns full records including phone, newest first.
func (s *ContactService) ListFull() ([]domain.Contact, error) {
	return s.Contacts.ListAll()
}
