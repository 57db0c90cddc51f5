package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

// ResourceService curates financial-literacy resources and their likes.
type ResourceService struct {
	resources ports.ResourceRepository
	audit     ports.AuditRecorder
	logger    zerolog.Logger
}

func NewResourceService(resources ports.ResourceRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ResourceService {
	return &ResourceService{resources: resources, audit: audit, logger: logger}
}

func (s *ResourceService) ListByType(ctx context.Context, viewer domain.Actor, resourceType string) ([]ports.ResourceView, error) {
	t, err := domain.ParseResourceType(resourceType)
	if err != nil {
		return nil, err
	}

	list, err := s.resources.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	var liked map[int64]struct{}
	if viewer.UserID != 0 {
		if liked, err = s.resources.LikedIDs(ctx, viewer.UserID); err != nil {
			return nil, fmt.Errorf("list resources: liked set: %w", err)
		}
	}

	views := make([]ports.ResourceView, len(list))
	for i, r := range list {
		views[i] = ports.ResourceView{FinancialResource: r}
		if liked != nil {
			_, ok := liked[r.ID]
			views[i].LikedByMe = &ok
		}
	}
	return views, nil
}

func (s *ResourceService) Create(ctx context.Context, actor domain.Actor, in ports.ResourceInput) (*domain.FinancialResource, error) {
	res := &domain.FinancialResource{CreatedAt: time.Now().UTC()}
	if err := applyResourceInput(res, in); err != nil {
		return nil, err
	}
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.record(ctx, domain.AuditResourceCreated, actor, res)
	return res, nil
}

func (s *ResourceService) Update(ctx context.Context, actor domain.Actor, id int64, in ports.ResourceInput) (*domain.FinancialResource, error) {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyResourceInput(res, in); err != nil {
		return nil, err
	}
	if err := s.resources.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}

	s.record(ctx, domain.AuditResourceUpdated, actor, res)
	return res, nil
}

func (s *ResourceService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	res, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resources.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, domain.AuditResourceDeleted, actor, res)
	return nil
}

// Like adds the caller's like and returns the resource's new like count.
func (s *ResourceService) Like(ctx context.Context, actor domain.Actor, id int64) (int64, error) {
	if _, err := s.resources.GetByID(ctx, id); err != nil {
		return 0, err
	}
	likes, err := s.resources.Like(ctx, id, actor.UserID)
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("resource_id", id).Int64("user_id", actor.UserID).Int64("likes", likes).Msg("resource liked")
	return likes, nil
}

func (s *ResourceService) Unlike(ctx context.Context, actor domain.Actor, id int64) (int64, error) {
	if _, err := s.resources.GetByID(ctx, id); err != nil {
		return 0, err
	}
	likes, err := s.resources.Unlike(ctx, id, actor.UserID)
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("resource_id", id).Int64("user_id", actor.UserID).Int64("likes", likes).Msg("resource unliked")
	return likes, nil
}

func (s *ResourceService) record(ctx context.Context, action domain.AuditAction, actor domain.Actor, res *domain.FinancialResource) {
	s.audit.Record(ctx, domain.AuditEvent{
		Action:     action,
		ActorID:    actor.UserID,
		TargetType: "financial_resource",
		TargetID:   res.ID,
		Detail:     res.Name,
		At:         time.Now().UTC(),
	})
}

func applyResourceInput(res *domain.FinancialResource, in ports.ResourceInput) error {
	t, err := domain.ParseResourceType(in.ResourceType)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(in.Name)
	website := strings.TrimSpace(in.Website)
	if name == "" || website == "" {
		return domain.ErrResourceFieldsReq
	}

	res.Name = name
	res.Website = website
	res.Description = strings.TrimSpace(in.Description)
	res.ResourceType = t
	return nil
}
