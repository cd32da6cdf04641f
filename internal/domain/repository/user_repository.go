package repository

import "github.com/olivarmoveis/contagem-api/internal/domain/entity"

// UserRepository define o porto de persistência de usuários.
type UserRepository interface {
	// Create retorna domain.ErrLoginJaExiste se o login já estiver cadastrado.
	Create(user *entity.User) error
	// FindByLogin retorna (nil, nil) quando o usuário não existe.
	FindByLogin(login string) (*entity.User, error)
}
