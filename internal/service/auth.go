package service

import (
	"context"
	"errors"

	"umbrella-share-backend/internal/domain"
	"umbrella-share-backend/internal/repository"
	"umbrella-share-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid login credentials or password")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrStudentIDTaken     = errors.New("user already exists with this student ID")
)

type authService struct {
	userRepo   repository.UserRepository
	borrowRepo repository.BorrowRepository
	tokens     security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, borrowRepo repository.BorrowRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		borrowRepo: borrowRepo,
		tokens:     tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, studentID, password string) (*domain.User, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}
	if _, err := s.userRepo.GetByStudentID(ctx, studentID); err == nil {
		return nil, "", ErrStudentIDTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		StudentID:    studentID,
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*domain.User, *domain.BorrowRecord, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	current, err := s.borrowRepo.GetOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return user, current, nil
}
