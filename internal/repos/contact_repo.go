package repos

import (
	"luxelane/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Insert(c domain.Contact) error {
	_, err := r.db.Exec(`
	  INSERT INTO contacts(id, name, email, phone, message)
	  VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, c.Message)
	return err
}

func (r *ContactRepo) Get(id string) (domain.Contact, error) {
	var c domain.Contact
	err := r.db.Get(&c, `
	  SELECT id, name, email, phone, message, created_at
	  FROM contacts WHERE id = ?
	`, id)
	return c, err
}

// ListAll returns full records, phone included, newest first.
func (r *ContactRepo) ListAll() ([]domain.Contact, error) {
	// Non-nil so an empty table serializes as [] rather than null.
	out := []domain.Contact{}
	err := r.db.Select(&out, `
	  SELECT id, name, email, phone, message, created_at
	  FROM contacts
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}

// ListSummaries returns the phone-stripped shape, newest first.
func (r *ContactRepo) ListSummaries() ([]domain.ContactSummary, error) {
	out := []domain.ContactSummary{}
	err := r.db.Select(&out, `
	  SELECT id, name, email, message, created_at
	  FROM contacts
	  ORDER BY datetime(created_at) DESC, id
	`)
	return out, err
}

func (r *ContactRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contacts`)
	return n, err
}
