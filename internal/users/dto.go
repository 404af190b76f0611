package users

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin seller"`
}

// UpdateRequest changes account fields. Absent fields are left untouched.
type UpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin seller"`
}
