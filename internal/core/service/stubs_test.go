package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/quickaccess/linkdir/internal/core/domain"
	"github.com/quickaccess/linkdir/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users     []domain.User
	createErr error
	nextID    int
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	u := *user
	u.ID = fmt.Sprintf("u%d", r.nextID)
	r.users = append(r.users, u)
	return &u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

// stubRoleRepo is an in-memory ports.RoleRepository.
type stubRoleRepo struct {
	roles   []domain.Role
	listErr error
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.Role(nil), r.roles...), nil
}

func (r *stubRoleRepo) FindBySlug(_ context.Context, slug string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Slug == slug {
			out := role
			return &out, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) error {
	for _, existing := range r.roles {
		if existing.Slug == role.Slug {
			return domain.ErrRoleExists
		}
	}
	r.roles = append(r.roles, *role)
	return nil
}

// stubLinkRepo is an in-memory ports.LinkRepository. Every call appends to
// events so tests can assert ordering against the audit recorder.
type stubLinkRepo struct {
	links  map[string]domain.Link
	events *[]string
	nextID int
}

func newStubLinkRepo(events *[]string) *stubLinkRepo {
	return &stubLinkRepo{links: make(map[string]domain.Link), events: events}
}

func (r *stubLinkRepo) note(event string) {
	if r.events != nil {
		*r.events = append(*r.events, event)
	}
}

func (r *stubLinkRepo) Create(_ context.Context, link *domain.Link) (*domain.Link, error) {
	r.nextID++
	l := *link
	l.ID = fmt.Sprintf("l%d", r.nextID)
	r.links[l.ID] = l
	r.note("create")
	return &l, nil
}

func (r *stubLinkRepo) FindByID(_ context.Context, id string) (*domain.Link, error) {
	l, ok := r.links[id]
	if !ok {
		return nil, domain.ErrLinkNotFound
	}
	out := l
	return &out, nil
}

func (r *stubLinkRepo) ListByCategories(_ context.Context, categories []string) ([]domain.Link, error) {
	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}
	var out []domain.Link
	for _, l := range r.links {
		if _, ok := allowed[l.Category]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLinkRepo) Update(_ context.Context, link *domain.Link) (*domain.Link, error) {
	if _, ok := r.links[link.ID]; !ok {
		return nil, domain.ErrLinkNotFound
	}
	r.links[link.ID] = *link
	out := *link
	return &out, nil
}

func (r *stubLinkRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.links[id]; !ok {
		return domain.ErrLinkNotFound
	}
	delete(r.links, id)
	r.note("delete")
	return nil
}

// stubLogRepo is an in-memory ports.LogRepository.
type stubLogRepo struct {
	mu        sync.Mutex
	entries   []domain.LogEntry
	insertErr error
}

func (r *stubLogRepo) Insert(_ context.Context, entry *domain.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubLogRepo) page(all []domain.LogEntry, page, limit int) ([]domain.LogEntry, int64) {
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]domain.LogEntry(nil), all[start:end]...), total
}

func (r *stubLogRepo) Recent(_ context.Context, page, limit int) ([]domain.LogEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries, total := r.page(r.entries, page, limit)
	return entries, total, nil
}

func (r *stubLogRepo) ByUser(_ context.Context, userID string, page, limit int) ([]domain.LogEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var byUser []domain.LogEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			byUser = append(byUser, e)
		}
	}
	entries, total := r.page(byUser, page, limit)
	return entries, total, nil
}

func (r *stubLogRepo) LatestByUser(_ context.Context, userID string) (*domain.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			out := r.entries[i]
			return &out, nil
		}
	}
	return nil, domain.ErrLogNotFound
}

// captureRecorder records audit entries synchronously so tests can inspect
// them without draining a queue.
type captureRecorder struct {
	entries []domain.LogEntry
	events  *[]string
}

func (r *captureRecorder) Record(entry domain.LogEntry) {
	r.entries = append(r.entries, entry)
	if r.events != nil {
		*r.events = append(*r.events, "audit:"+string(entry.Action))
	}
}

func (r *captureRecorder) last() domain.LogEntry {
	return r.entries[len(r.entries)-1]
}

func seededRoles() []domain.Role {
	return domain.DefaultRoles()
}

var _ ports.AuditRecorder = (*captureRecorder)(nil)
