package domain

// Policy computes category access from the live role registry. It is pure:
// every call receives the current registry contents so new roles take effect
// immediately, with no caching layer in between.
//
// FallbackAssignable guards against an empty or corrupted registry: without
// it a fresh deployment could never register an admin.
type Policy struct {
	FallbackAssignable []string
}

// NewPolicy returns a Policy carrying the stock fallback slugs.
func NewPolicy() Policy {
	return Policy{FallbackAssignable: []string{"admin", "marketer", "hr", "employee"}}
}

// AssignableSlugs returns the slugs a user may register under. When the
// registry holds no assignable roles the fallback list is returned.
func (p Policy) AssignableSlugs(roles []Role) []string {
	var slugs []string
	for _, r := range roles {
		if r.Assignable {
			slugs = append(slugs, r.Slug)
		}
	}
	if len(slugs) == 0 {
		return append([]string(nil), p.FallbackAssignable...)
	}
	return slugs
}

// AllowedCategories returns the link categories actorRole may read and
// target on creation. Admins see every assignable category plus "other";
// everyone else sees their own category plus "other" when the registry
// defines it.
func (p Policy) AllowedCategories(actorRole string, roles []Role) []string {
	if actorRole == RoleAdmin {
		return dedup(append(p.AssignableSlugs(roles), SlugOther))
	}

	allowed := []string{actorRole}
	for _, r := range roles {
		if r.Slug == SlugOther {
			allowed = append(allowed, SlugOther)
			break
		}
	}
	return dedup(allowed)
}

// CanRead reports whether actorRole may see links in the given category.
func (p Policy) CanRead(actorRole, category string, roles []Role) bool {
	for _, c := range p.AllowedCategories(actorRole, roles) {
		if c == category {
			return true
		}
	}
	return false
}

// CanUseCategory reports whether actorRole may create a link in (or move a
// link into) the given category. Creation targets the same set a role can
// read, so this is the read check under a name that states the intent.
func (p Policy) CanUseCategory(actorRole, category string, roles []Role) bool {
	return p.CanRead(actorRole, category, roles)
}

// CanMutate reports whether the actor may update or delete an existing
// link. Ownership overrides category membership: the creator keeps mutation
// rights regardless of the link's category, and admins may mutate anything.
func (p Policy) CanMutate(actorRole, actorID string, link Link) bool {
	return actorRole == RoleAdmin || link.CreatedBy == actorID
}

func dedup(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
