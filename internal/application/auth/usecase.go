package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/olivarmoveis/contagem-api/internal/application/dto"
	"github.com/olivarmoveis/contagem-api/internal/domain"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
	"github.com/olivarmoveis/contagem-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: cadastro e login.
// Senhas sempre com bcrypt; não existe comparação em texto plano.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário com hash bcrypt da senha.
// Retorna ErrLoginJaExiste se o login já estiver cadastrado.
func (uc *UseCase) Register(in dto.RegisterRequest) error {
	if in.Login == "" || in.Senha == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByLogin(in.Login)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrLoginJaExiste
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        in.Login,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return uc.userRepo.Create(user)
}

// Login verifica login/senha e emite um JWT.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Login == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Login, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Login: user.Login}, nil
}
