package user

// Role is the access level of a user.
type Role string

const (
	// RoleStudent joins activities. The wire value is "mahasiswa".
	RoleStudent Role = "mahasiswa"
	// RoleAdmin creates and edits activities.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is a registered account. PasswordHash is never serialised.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

// Summary is the public view of a user.
type Summary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Summary returns the public view of u.
func (u User) Summary() Summary {
	return Summary{ID: u.ID, Username: u.Username, Role: u.Role}
}
