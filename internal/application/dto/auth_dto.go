package dto

// RegisterRequest entrada para registro (el password viaja en texto y se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida del login: token Bearer y nombre para mostrar.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
