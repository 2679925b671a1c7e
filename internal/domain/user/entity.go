package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access including user administration
	RoleManager Role = "manager" // Everything except user administration
	RoleUser    Role = "user"    // Clock-in/out and history only
)

// SeedAdminID is the id of the bootstrap administrator account. The account
// is created at startup from environment credentials and can never be deleted
// or deactivated.
const SeedAdminID = 1

type User struct {
	ID           int
	Username     string
	PasswordHash string
	LastName     string
	FirstName    string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsSeedAdmin() bool {
	return u.ID == SeedAdminID
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}
