package request

type CreateAccountRequest struct {
	FullName    string  `json:"full_name" validate:"required,min=2,max=100"`
	PhoneNumber string  `json:"phone_number" validate:"required,phone"`
	Email       string  `json:"email" validate:"required,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

// UpdateAccountRequest lists the only account fields a user may change.
// Nil fields are left untouched.
type UpdateAccountRequest struct {
	FullName    *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,phone"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r UpdateAccountRequest) Empty() bool {
	return r.FullName == nil && r.PhoneNumber == nil && r.Email == nil
}

type LoginRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password,omitempty"`
}

type SetVerifiedRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}
