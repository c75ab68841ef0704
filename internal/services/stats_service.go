package services

import (
	"context"

	"github.com/skillsphere/backend/internal/models"
)

// StatsRepository defines methods for dashboard statistics queries
type StatsRepository interface {
	// GetAdminStats retrieves platform-wide course statistics
	//
	// "ctx" is the context for the request.
	//
	// Returns the statistics and an error if any.
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
	// GetInstructorStats retrieves course statistics for one instructor
	//
	// "ctx" is the context for the request.
	// "instructorID" is the ID of the instructor.
	//
	// Returns the statistics and an error if any.
	GetInstructorStats(ctx context.Context, instructorID int) (*models.InstructorStats, error)
}

type statsService struct {
	statsRepo StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo StatsRepository) *statsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

// GetAdminStats retrieves platform-wide course statistics
func (s *statsService) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	return s.statsRepo.GetAdminStats(ctx)
}

// GetInstructorStats retrieves course statistics for the instructor
func (s *statsService) GetInstructorStats(ctx context.Context, instructorID int) (*models.InstructorStats, error) {
	return s.statsRepo.GetInstructorStats(ctx, instructorID)
}
