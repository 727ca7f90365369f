package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project-composer-be/internal/config"
	"project-composer-be/internal/dto"
	"project-composer-be/internal/entity"
	"project-composer-be/internal/repository/specification"
	"project-composer-be/internal/repository/unitofwork"

	"project-composer-be/pkg/events"
	pktNats "project-composer-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IAuthService interface {
	// SignInAnonymously mints a throwaway identity so a fresh session can
	// still sync its workspace.
	SignInAnonymously(ctx context.Context) (*dto.SignInResponse, error)

	// SignInWithToken resolves a custom token minted by a trusted backend.
	SignInWithToken(ctx context.Context, req *dto.TokenSignInRequest) (*dto.SignInResponse, error)

	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	authCfg        config.AuthConfig
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		authCfg:        authCfg,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":      user.Id.String(),
		"is_anonymous": user.IsAnonymous,
		"exp":          time.Now().Add(s.authCfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authCfg.JWTSecret))
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	profile := dto.UserProfileResponse{
		Id:          user.Id,
		FullName:    user.FullName,
		IsAnonymous: user.IsAnonymous,
		CreatedAt:   user.CreatedAt,
	}
	if user.Email != nil {
		profile.Email = *user.Email
	}
	if user.AvatarURL != nil {
		profile.AvatarURL = *user.AvatarURL
	}
	return profile
}

func (s *authService) SignInAnonymously(ctx context.Context) (*dto.SignInResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{
		Id:          uuid.New(),
		FullName:    "Guest",
		Status:      entity.UserStatusActive,
		IsAnonymous: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	signedToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewUserSignedIn(user.Id, "anonymous")
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_SIGNED_IN event: %v\n", err)
		}
	}

	return &dto.SignInResponse{
		AccessToken: signedToken,
		User:        toUserProfile(user),
	}, nil
}

func (s *authService) SignInWithToken(ctx context.Context, req *dto.TokenSignInRequest) (*dto.SignInResponse, error) {
	token, err := jwt.Parse(req.Token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.authCfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid custom token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid custom token")
	}

	rawID, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.New("custom token carries no user id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}

	// The minting backend owns the identity; first sign-in provisions it.
	if user == nil {
		fullName, _ := claims["name"].(string)
		if fullName == "" {
			fullName = "Guest"
		}
		user = &entity.User{
			Id:          userId,
			FullName:    fullName,
			Status:      entity.UserStatusActive,
			IsAnonymous: false,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	signedToken, err := s.signAccessToken(user)
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewUserSignedIn(user.Id, "custom_token")
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_SIGNED_IN event: %v\n", err)
		}
	}

	return &dto.SignInResponse{
		AccessToken: signedToken,
		User:        toUserProfile(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	profile := toUserProfile(user)
	return &profile, nil
}
