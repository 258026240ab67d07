package model

// Role determines which side of the MOF workflow a user acts on.
type Role string

// Role codes as constants
const (
	RoleAdmin     Role = "ADMIN"
	RolePicking   Role = "PICKING"
	RoleRequester Role = "REQUESTER"
)

// Valid reports whether r is one of the known role codes.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePicking, RoleRequester:
		return true
	}
	return false
}
