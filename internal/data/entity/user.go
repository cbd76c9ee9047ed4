package entity

type UserRole string

const (
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// User is the single source of truth for a person's name and contact data.
type User struct {
	BaseSimple
	FullName     string   `json:"full_name"`
	PhoneNumber  string   `json:"phone_number"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	IsVerified   bool     `json:"is_verified"`
	PasswordHash string   `json:"password_hash,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// HasPassword reports whether the account was created with a credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
