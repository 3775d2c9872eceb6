package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/denonce-tg/signalement-api/internal/config"
	"github.com/denonce-tg/signalement-api/internal/dto"
	"github.com/denonce-tg/signalement-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials  = errors.New("identifiants invalides")
	ErrAdminInactive       = errors.New("administrateur introuvable ou inactif")
	ErrEmailTaken          = errors.New("un administrateur avec cet email existe déjà")
	ErrAdminFieldsRequired = errors.New("email, nom et motDePasse sont requis")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login authenticates an active administrator. Unknown email and wrong
// password both surface as ErrInvalidCredentials so the caller learns
// nothing about which one failed.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var admin models.Administrateur
	if err := s.db.Where("email = ? AND actif = ?", req.Email, true).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.MotDePasse), []byte(req.MotDePasse)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&admin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Message: "Connexion réussie",
		Token:   token,
		Admin: dto.AdminSummary{
			ID:    admin.ID,
			Nom:   admin.Nom,
			Email: admin.Email,
			Role:  admin.Role,
			Actif: admin.Actif,
		},
	}, nil
}

// GenerateToken issues an HS256 token carrying the administrator's id,
// email and role, valid for the configured window (24h by default).
func (s *AuthService) GenerateToken(admin *models.Administrateur) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"role":     admin.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ResolveAdmin maps verified token claims back to an active administrator
// record. A deactivated account fails here even with a still-valid token.
func (s *AuthService) ResolveAdmin(claims jwt.MapClaims) (*models.Administrateur, error) {
	sub, _ := claims["admin_id"].(string)
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrAdminInactive
	}

	var admin models.Administrateur
	if err := s.db.Where("id = ? AND actif = ?", adminID, true).First(&admin).Error; err != nil {
		return nil, ErrAdminInactive
	}
	return &admin, nil
}

func (s *AuthService) ListAdmins() ([]dto.AdminResponse, error) {
	var admins []models.Administrateur
	if err := s.db.Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}

	out := make([]dto.AdminResponse, len(admins))
	for i, a := range admins {
		out[i] = dto.AdminResponse{
			ID:        a.ID,
			Email:     a.Email,
			Nom:       a.Nom,
			Role:      a.Role,
			Actif:     a.Actif,
			CreatedAt: a.CreatedAt,
		}
	}
	return out, nil
}

func (s *AuthService) CreateAdmin(req *dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	if req.Email == "" || req.Nom == "" || req.MotDePasse == "" {
		return nil, ErrAdminFieldsRequired
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.Administrateur{
		Email:      req.Email,
		Nom:        req.Nom,
		MotDePasse: string(hash),
		Role:       role,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create administrator: %w", err)
	}

	return &dto.AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Nom:       admin.Nom,
		Role:      admin.Role,
		Actif:     admin.Actif,
		CreatedAt: admin.CreatedAt,
	}, nil
}
