package patient

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertProfile stores the profile for the given account email, replacing any
// previous version.
func (s *Service) UpsertProfile(ctx context.Context, email string, p *Patient) (*Patient, error) {
	if p.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 150) {
		return nil, fmt.Errorf("age is out of range")
	}
	p.Email = email
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfile returns the profile for the given account email.
func (s *Service) GetProfile(ctx context.Context, email string) (*Patient, error) {
	return s.repo.GetByEmail(ctx, email)
}
