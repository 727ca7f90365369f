package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
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
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.SignInResponse, error)
}

type oauthService struct {
	uowFactory     unitofwork.RepositoryFactory
	authCfg        config.AuthConfig
	googleConf     *oauth2.Config
	eventPublisher *pktNats.Publisher
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, authCfg config.AuthConfig, oauthCfg config.OAuthConfig, eventPublisher *pktNats.Publisher) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     oauthCfg.GoogleClientID,
		ClientSecret: oauthCfg.GoogleClientSecret,
		RedirectURL:  oauthCfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:     uowFactory,
		authCfg:        authCfg,
		googleConf:     conf,
		eventPublisher: eventPublisher,
	}
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.SignInResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %v", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Prefer the provider link: it survives email changes on the Google side.
	var user *entity.User
	link, err := uow.UserRepository().FindProvider(ctx, specification.ByProvider{
		ProviderName:   "google",
		ProviderUserId: googleUser.ID,
	})
	if err != nil {
		return nil, err
	}
	if link != nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: link.UserId})
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		newUser := &entity.User{
			Id:          uuid.New(),
			Email:       &googleUser.Email,
			FullName:    googleUser.Name,
			AvatarURL:   &googleUser.Picture,
			Status:      entity.UserStatusActive,
			IsAnonymous: false,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}

		if err := uow.UserRepository().Create(ctx, newUser); err != nil {
			uow.Rollback()
			return nil, err
		}

		if link == nil {
			provider := &entity.UserProvider{
				Id:             uuid.New(),
				UserId:         newUser.Id,
				ProviderName:   "google",
				ProviderUserId: googleUser.ID,
				AvatarURL:      googleUser.Picture,
				CreatedAt:      time.Now(),
			}
			if err := uow.UserRepository().CreateProvider(ctx, provider); err != nil {
				uow.Rollback()
				return nil, fmt.Errorf("failed to save provider info: %v", err)
			}
		}

		if err := uow.Commit(); err != nil {
			return nil, err
		}

		user = newUser
	} else if link == nil {
		provider := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   "google",
			ProviderUserId: googleUser.ID,
			AvatarURL:      googleUser.Picture,
			CreatedAt:      time.Now(),
		}
		if err := uow.UserRepository().CreateProvider(ctx, provider); err != nil {
			return nil, fmt.Errorf("failed to save provider info: %v", err)
		}
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	claims := jwt.MapClaims{
		"user_id":      user.Id.String(),
		"is_anonymous": false,
		"exp":          time.Now().Add(s.authCfg.TokenTTL).Unix(),
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := jwtToken.SignedString([]byte(s.authCfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewUserSignedIn(user.Id, "google")
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_SIGNED_IN event: %v\n", err)
		}
	}

	return &dto.SignInResponse{
		AccessToken: signedToken,
		User:        toUserProfile(user),
	}, nil
}
