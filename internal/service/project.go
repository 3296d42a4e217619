package service

import (
	"context"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/logger"
	"cinerent-backend/internal/repository"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	tx          repository.Tx
}

func NewProjectService(projectRepo repository.ProjectRepository, tx repository.Tx) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		tx:          tx,
	}
}

func (s *projectService) GetProject(ctx context.Context, id int32) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// TransitionStatus updates the project and, for terminal statuses, finalizes
// child bookings in the same transaction: either the project and every
// affected booking move together, or none do.
func (s *projectService) TransitionStatus(ctx context.Context, id int32, status domain.ProjectStatus) (*domain.Project, int64, error) {
	if !status.Valid() {
		return nil, 0, &domain.ValidationError{Field: "status", Message: "unknown project status"}
	}

	var project *domain.Project
	var finalized int64
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		p, err := s.projectRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.projectRepo.UpdateStatus(txCtx, id, status); err != nil {
			return err
		}
		p.Status = status

		if status.Terminal() {
			n, err := s.projectRepo.FinalizeBookings(txCtx, id)
			if err != nil {
				return err
			}
			finalized = n
		}
		project = p
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if finalized > 0 {
		logger.Info("project bookings finalized", "project_id", id, "status", status, "bookings", finalized)
	}
	return project, finalized, nil
}
