package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// LinkService implements the role-gated directory CRUD. Every category
// decision consults the registry fresh so new roles apply immediately.
type LinkService struct {
	links  ports.LinkRepository
	roles  ports.RoleRepository
	policy domain.Policy
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewLinkService(
	links ports.LinkRepository,
	roles ports.RoleRepository,
	policy domain.Policy,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *LinkService {
	return &LinkService{links: links, roles: roles, policy: policy, audit: audit, log: log}
}

func (s *LinkService) List(ctx context.Context, actor ports.Claims) ([]domain.Link, error) {
	registry, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return s.links.ListByCategories(ctx, s.policy.AllowedCategories(actor.Role, registry))
}

func (s *LinkService) Create(ctx context.Context, actor ports.Claims, in ports.LinkInput, meta ports.RequestMeta) (*domain.Link, error) {
	if in.Title == "" || in.URL == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}

	registry, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	if !s.policy.CanUseCategory(actor.Role, in.Category, registry) {
		return nil, domain.ErrCategoryForbidden
	}

	link := &domain.Link{
		Title:         in.Title,
		URL:           in.URL,
		Description:   in.Description,
		Logo:          in.Logo,
		Category:      in.Category,
		CreatedBy:     actor.UserID,
		CreatedByName: actor.Username,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.links.Create(ctx, link)
	if err != nil {
		return nil, err
	}

	s.audit.Record(s.entry(actor, domain.ActionLinkAdded,
		fmt.Sprintf("Added link: %s (%s) to category: %s", created.Title, created.URL, created.Category), meta))

	s.log.Info().Str("title", created.Title).Str("category", created.Category).Str("created_by", actor.Username).Msg("link created")
	return created, nil
}

func (s *LinkService) Update(ctx context.Context, actor ports.Claims, id string, in ports.LinkInput, meta ports.RequestMeta) (*domain.Link, error) {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanMutate(actor.Role, actor.UserID, *link) {
		return nil, domain.ErrForbidden
	}

	// A category change is re-validated against the updater's own permitted
	// set, not the original creator's.
	if in.Category != "" {
		registry, err := s.roles.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("load roles: %w", err)
		}
		if !s.policy.CanUseCategory(actor.Role, in.Category, registry) {
			return nil, domain.ErrCategoryForbidden
		}
		link.Category = in.Category
	}

	// Empty fields keep the stored value. An explicit empty string cannot
	// clear a field.
	if in.Title != "" {
		link.Title = in.Title
	}
	if in.URL != "" {
		link.URL = in.URL
	}
	if in.Description != "" {
		link.Description = in.Description
	}
	if in.Logo != "" {
		link.Logo = in.Logo
	}

	updated, err := s.links.Update(ctx, link)
	if err != nil {
		return nil, err
	}

	s.audit.Record(s.entry(actor, domain.ActionLinkUpdated,
		fmt.Sprintf("Updated link: %s (%s)", updated.Title, updated.URL), meta))

	return updated, nil
}

// Delete audits before issuing the delete so a removed link always leaves a
// trace, even when the log write itself ends up lost.
func (s *LinkService) Delete(ctx context.Context, actor ports.Claims, id string, meta ports.RequestMeta) error {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.CanMutate(actor.Role, actor.UserID, *link) {
		return domain.ErrForbidden
	}

	s.audit.Record(s.entry(actor, domain.ActionLinkDeleted,
		fmt.Sprintf("Deleted link: %s (%s)", link.Title, link.URL), meta))

	if err := s.links.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("title", link.Title).Str("deleted_by", actor.Username).Msg("link deleted")
	return nil
}

func (s *LinkService) Click(ctx context.Context, actor ports.Claims, id string, meta ports.RequestMeta) error {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		return err
	}

	registry, err := s.roles.List(ctx)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	if !s.policy.CanRead(actor.Role, link.Category, registry) {
		return domain.ErrForbidden
	}

	s.audit.Record(s.entry(actor, domain.ActionLinkClick,
		fmt.Sprintf("Opened link: %s (%s)", link.Title, link.URL), meta))
	return nil
}

func (s *LinkService) entry(actor ports.Claims, action domain.Action, details string, meta ports.RequestMeta) domain.LogEntry {
	return domain.LogEntry{
		UserID:    actor.UserID,
		Username:  actor.Username,
		Role:      actor.Role,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
}
