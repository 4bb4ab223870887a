package insights

import (
	"context"
)

const emptyMessage = "No symptom history yet. Analyze your symptoms to start building your timeline."

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SeverityReport builds the severity timeline for the caller. Read-only.
func (s *Service) SeverityReport(ctx context.Context, email string) (*Report, error) {
	points, err := s.repo.SeverityPoints(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return &Report{Points: []Point{}, Empty: true, Message: emptyMessage}, nil
	}
	return &Report{Points: points, Empty: false}, nil
}
