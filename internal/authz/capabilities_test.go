package authz

import "testing"

func TestForKnownRoles(t *testing.T) {
    cases := []struct {
        role string
        want Capabilities
    }{
        {"admin", Capabilities{IsAdmin: true, CanCreate: true, CanEdit: true, CanDelete: true, CanView: true, CanAccessHome: true, CanAccessRoles: true}},
        {"manager", Capabilities{IsManager: true, CanCreate: true, CanEdit: true, CanDelete: true, CanView: true, CanAccessHome: true, CanAccessRoles: true}},
        {"agent", Capabilities{IsAgent: true, CanView: true}},
    }
    for _, tc := range cases {
        if got := For(tc.role); got != tc.want {
            t.Errorf("For(%q) = %+v, want %+v", tc.role, got, tc.want)
        }
    }
}

// Any role outside {admin, manager, agent} grants nothing.  That includes
// "client": clients authenticate but hold no admin capabilities, not even
// CanView.
func TestForGrantsNothingOtherwise(t *testing.T) {
    for _, role := range []string{"client", "", "ADMIN", "root", "superuser"} {
        if got := For(role); got != (Capabilities{}) {
            t.Errorf("For(%q) = %+v, want all false", role, got)
        }
    }
}
