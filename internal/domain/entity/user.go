package entity

import "time"

// User usuário da aplicação. Esquema fixo e tipado; a senha é sempre
// armazenada como hash bcrypt.
type User struct {
	ID           string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
