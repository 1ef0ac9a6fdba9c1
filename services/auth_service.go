package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/helper"
	"netflix-clone-backend/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	userRepo UserStore
	tokens   *TokenManager
	validate *validator.Validate
	logger   hclog.Logger
}

func NewAuthService(userRepo UserStore, tokens *TokenManager, logger hclog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validator.New(),
		logger:   logger.Named("auth"),
	}
}

// Signup creates the account and returns it together with a session token.
// Duplicate email or username surfaces as data_access.ErrEmailTaken or
// data_access.ErrUsernameTaken from the store's unique constraint.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, string, error) {
	email := helper.NormalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	if email == "" || req.Password == "" || username == "" {
		return nil, "", invalid("All fields are required")
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, "", invalid("Invalid email")
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", invalid(fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		Email:     email,
		Username:  username,
		Password:  string(hashedPassword),
		Image:     helper.RandomAvatar(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Sign(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user signed up", "user_id", user.ID.Hex(), "username", user.Username)
	public := user.Public()
	return &public, token, nil
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	email := helper.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, "", invalid("All fields are required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, data_access.ErrUserNotFound) {
		return nil, "", ErrUnknownAccount
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	public := user.Public()
	return &public, token, nil
}

// Authenticate resolves a session token to the stored user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return s.userRepo.FindByID(ctx, id)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	changes := models.UpdateProfileRequest{Image: req.Image}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, invalid("Username cannot be empty")
		}
		changes.Username = &username
	}
	if req.Email != nil {
		email := helper.NormalizeEmail(*req.Email)
		if err := s.validate.Var(email, "required,email"); err != nil {
			return nil, invalid("Invalid email")
		}
		changes.Email = &email
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, changes)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.tokens.TTL()
}
