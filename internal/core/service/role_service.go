package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// RoleService implements the role registry lifecycle.
type RoleService struct {
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, log: log}
}

// List returns the registry sorted assignable-first, then alphabetically by
// name. The repository applies the same order; sorting here keeps the
// contract independent of the storage backend.
func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(roles, func(i, j int) bool {
		if roles[i].Assignable != roles[j].Assignable {
			return roles[i].Assignable
		}
		return roles[i].Name < roles[j].Name
	})
	return roles, nil
}

// Create adds a new assignable role. The slug is derived from the name; an
// empty derivation or the reserved "other" is rejected.
func (s *RoleService) Create(ctx context.Context, name, accent string) (*domain.Role, error) {
	slug := domain.Slugify(name)
	if !domain.ValidNewRoleSlug(slug) {
		return nil, domain.ErrInvalidRoleName
	}

	if existing, err := s.roles.FindBySlug(ctx, slug); err == nil && existing != nil {
		return nil, domain.ErrRoleExists
	} else if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("find role: %w", err)
	}

	if accent == "" {
		accent = domain.DefaultAccent
	}

	role := &domain.Role{
		Name:       strings.TrimSpace(name),
		Slug:       slug,
		Accent:     accent,
		Assignable: true,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.log.Info().Str("slug", role.Slug).Str("name", role.Name).Msg("role created")
	return role, nil
}

// SeedDefaults inserts any of the default roles not already present, keyed
// by slug. It keeps going past individual failures so one bad insert cannot
// block the rest of the seed set; the first error is returned for the
// caller to log.
func (s *RoleService) SeedDefaults(ctx context.Context) error {
	var firstErr error
	for _, def := range domain.DefaultRoles() {
		_, err := s.roles.FindBySlug(ctx, def.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrRoleNotFound) {
			s.log.Warn().Err(err).Str("slug", def.Slug).Msg("role seed lookup failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		role := def
		if err := s.roles.Create(ctx, &role); err != nil {
			if errors.Is(err, domain.ErrRoleExists) {
				continue
			}
			s.log.Warn().Err(err).Str("slug", def.Slug).Msg("role seed insert failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s.log.Info().Str("slug", def.Slug).Msg("seeded default role")
	}
	return firstErr
}
