package dto

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
