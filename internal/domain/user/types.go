package user

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"

	// RoleUnknown is the explicit fallback for values arriving from stale or
	// external data. It never admits anything.
	RoleUnknown Role = "unknown"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// ParseRole is the total variant of NewRole: unrecognized values collapse to
// RoleUnknown instead of failing.
func ParseRole(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleUnknown
	}
	return role
}
