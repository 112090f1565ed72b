package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterAccountRequest) (AccountResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	account, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	employeeID := ""
	if account.EmployeeID != nil {
		employeeID = account.EmployeeID.String()
	}

	claims := jwt.MapClaims{
		"account_id":  account.ID.String(),
		"employee_id": employeeID,
		"role":        account.Role,
		"exp":         time.Now().Add(12 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: signed,
		Role:        account.Role,
		EmployeeID:  employeeID,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterAccountRequest) (AccountResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, err
	}

	account := &Account{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Active:       true,
	}

	if req.EmployeeID != "" {
		employeeID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AccountResponse{}, errors.New("invalid employee id")
		}
		account.EmployeeID = &employeeID
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}

	return mapToAccountResponse(*account), nil
}

func mapToAccountResponse(a Account) AccountResponse {
	resp := AccountResponse{
		ID:       a.ID.String(),
		Username: a.Username,
		Role:     a.Role,
		Active:   a.Active,
	}
	if a.EmployeeID != nil {
		v := a.EmployeeID.String()
		resp.EmployeeID = &v
	}
	return resp
}
