package user

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleDispatchManager  Role = "dispatch_manager"
	RoleConstructionTeam Role = "construction_team"
	RoleWarehouse        Role = "warehouse"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDispatchManager, RoleConstructionTeam, RoleWarehouse:
		return true
	default:
		return false
	}
}

// Allows reports whether r may act as one of the given roles. Admin may act as anyone.
func (r Role) Allows(roles ...Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, want := range roles {
		if r == want {
			return true
		}
	}
	return false
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
