package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/access"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
	"github.com/tu-usuario/chinawok-ops/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: normaliza el correo, hashea el password con
// bcrypt y persiste. Un rol desconocido se pliega a Cliente; conceder
// privilegios requiere el camino administrativo, no el registro.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	correo := access.NormalizeEmail(in.Correo)
	existing, err := uc.userRepo.GetByEmail(correo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Email:        correo,
		Name:         in.Nombre,
		Role:         access.ParseRole(in.Role).String(),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica correo/password, genera JWT y retorna token + usuario.
// Correo inexistente y password incorrecto responden igual: credenciales inválidas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(access.NormalizeEmail(in.Correo))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		Usuario: *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Correo:    u.Email,
		Nombre:    u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
