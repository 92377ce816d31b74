package access

import (
	"fmt"
	"strings"
)

// PublicWritePolicy decides whether a signed-in user without a WRITE grant may write
// to a public inventory.
type PublicWritePolicy struct {
	name  string
	allow func(authenticated bool) bool
}

var (
	// AuthenticatedMayWritePublic lets any signed-in user write to a public inventory.
	AuthenticatedMayWritePublic = PublicWritePolicy{
		name:  PolicyNameAuthenticated,
		allow: func(authenticated bool) bool { return authenticated },
	}

	// GrantOnlyWritePublic keeps public inventories read-only except to grant holders.
	GrantOnlyWritePublic = PublicWritePolicy{
		name:  PolicyNameGrantOnly,
		allow: func(bool) bool { return false },
	}
)

// ParsePublicWritePolicy resolves a policy by name. Empty selects the default.
func ParsePublicWritePolicy(name string) (PublicWritePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyNameAuthenticated:
		return AuthenticatedMayWritePublic, nil
	case PolicyNameGrantOnly:
		return GrantOnlyWritePublic, nil
	default:
		return PublicWritePolicy{}, fmt.Errorf("unknown public write policy %q", name)
	}
}

// String returns the policy name.
func (p PublicWritePolicy) String() string {
	return p.name
}

// AllowsWrite reports whether the caller may write to a public inventory on the strength
// of its visibility alone.
func (p PublicWritePolicy) AllowsWrite(authenticated bool) bool {
	if p.allow == nil {
		return false
	}
	return p.allow(authenticated)
}
