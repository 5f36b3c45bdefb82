package dtos

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
}

// UserPayload is the envelope the front-end binds to on register, login
// and profile update. The token rides inside it.
type UserPayload struct {
	Email    string `json:"email"`
	LastName string `json:"lastName"`
	Location string `json:"location"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

type UserEnvelope struct {
	User UserPayload `json:"user"`
}
