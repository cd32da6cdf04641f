package dto

// RegisterRequest corpo de cadastro de usuário.
type RegisterRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// LoginRequest corpo de login.
type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}

// LoginResponse token emitido após autenticação.
type LoginResponse struct {
	Token string `json:"token"`
	Login string `json:"login"`
}
