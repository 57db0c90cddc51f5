package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// EmployerService manages the company profile of employer accounts.
type EmployerService struct {
	employers ports.EmployerRepository
	logger    zerolog.Logger
}

func NewEmployerService(employers ports.EmployerRepository, logger zerolog.Logger) *EmployerService {
	return &EmployerService{employers: employers, logger: logger}
}

func (s *EmployerService) Create(ctx context.Context, actor domain.Actor, in ports.EmployerInput) (*domain.Employer, error) {
	in = trimEmployerInput(in)
	if in.CompanyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}

	if _, err := s.employers.GetByUserID(ctx, actor.UserID); err == nil {
		return nil, domain.ErrEmployerExists
	} else if !errors.Is(err, domain.ErrEmployerNotFound) {
		return nil, fmt.Errorf("create employer: %w", err)
	}

	employer := &domain.Employer{
		UserID:      actor.UserID,
		CompanyName: in.CompanyName,
		Description: in.Description,
		Website:     in.Website,
		Location:    in.Location,
	}
	if err := s.employers.Create(ctx, employer); err != nil {
		if errors.Is(err, domain.ErrEmployerExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create employer: %w", err)
	}

	s.logger.Info().Int64("employer_id", employer.ID).Int64("user_id", actor.UserID).Msg("employer profile created")
	return employer, nil
}

func (s *EmployerService) Mine(ctx context.Context, actor domain.Actor) (*domain.Employer, error) {
	return s.employers.GetByUserID(ctx, actor.UserID)
}

// UpdateMine replaces every editable field, matching PUT semantics.
func (s *EmployerService) UpdateMine(ctx context.Context, actor domain.Actor, in ports.EmployerInput) (*domain.Employer, error) {
	in = trimEmployerInput(in)
	if in.CompanyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}

	employer, err := s.employers.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	employer.CompanyName = in.CompanyName
	employer.Description = in.Description
	employer.Website = in.Website
	employer.Location = in.Location

	if err := s.employers.Update(ctx, employer); err != nil {
		return nil, fmt.Errorf("update employer: %w", err)
	}
	return employer, nil
}

func (s *EmployerService) Get(ctx context.Context, id int64) (*domain.Employer, error) {
	return s.employers.GetByID(ctx, id)
}

func trimEmployerInput(in ports.EmployerInput) ports.EmployerInput {
	return ports.EmployerInput{
		CompanyName: strings.TrimSpace(in.CompanyName),
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		Location:    strings.TrimSpace(in.Location),
	}
}
