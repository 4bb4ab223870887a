package contact

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add appends an emergency contact. Phone format is deliberately not
// validated; whatever the patient typed is what gets dialed.
func (s *Service) Add(ctx context.Context, email string, c *Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	c.Email = email
	return s.repo.Create(ctx, c)
}

// List returns all of the caller's contacts in insertion order.
func (s *Service) List(ctx context.Context, email string) ([]*Contact, error) {
	return s.repo.ListByEmail(ctx, email)
}
