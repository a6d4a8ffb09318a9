package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/domain"
	"github.com/jhoicas/inventario-planchas/internal/domain/entity"
	"github.com/jhoicas/inventario-planchas/internal/domain/repository"
	"github.com/jhoicas/inventario-planchas/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicia y cierra sesiones. La sesión es un objeto explícito guardado en el
// SessionStore: se crea al iniciar sesión, se carga en cada petición y se elimina al cerrarla.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	sessions  repository.SessionStore
	passwords *Passwords
	jwtCfg    JWTConfig
	log       zerolog.Logger
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions repository.SessionStore, passwords *Passwords, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		sessions:  sessions,
		passwords: passwords,
		jwtCfg:    jwtCfg,
		log:       log.With().Str("component", "auth").Logger(),
		now:       time.Now,
	}
}

// Login verifica email/password, guarda la sesión y retorna token + usuario.
// Email desconocido y contraseña incorrecta dan el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.passwords.burn(in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.passwords.Matches(user.Password, in.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	session := &entity.Session{
		ID: uuid.New().String(),
		Principal: entity.Principal{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Authenticate valida el token y carga su sesión. Sin sesión guardada o vencida el principal
// no está autenticado.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	sessionID, _, _, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(uc.now()) {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// Logout elimina la sesión del almacén.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo cerrar la sesión")
		return err
	}
	return nil
}

// Me describe al principal de la sesión y sus capacidades.
func Me(p entity.Principal) dto.MeResponse {
	return dto.MeResponse{
		UserID:            p.UserID,
		Name:              p.Name,
		Email:             p.Email,
		Role:              p.Role,
		CanWrite:          p.CanWrite(),
		CanViewFinancials: p.CanViewFinancials(),
		CanManageUsers:    p.CanManageUsers(),
	}
}
