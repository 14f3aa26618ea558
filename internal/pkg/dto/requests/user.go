package requests

type CreateUser struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password  string `json:"password" validate:"required,password"`
	Role      string `json:"role" validate:"required,role_type"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

type UpdateUser struct {
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Role   string `json:"role,omitempty" validate:"omitempty,role_type"`
	Active *bool  `json:"active,omitempty"`
}
