// Package account implements registration, sessions, profile and
// admin user management.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type RegisterRequest struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Avatar   models.Media `json:"avatar"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is an issued token.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service struct {
	accounts *store.AccountStore
	courses  *store.CourseStore
	tokens   *auth.JWTService
	log      *zap.SugaredLogger
}

func NewService(accounts *store.AccountStore, courses *store.CourseStore, tokens *auth.JWTService, log *zap.SugaredLogger) *Service {
	return &Service{accounts: accounts, courses: courses, tokens: tokens, log: log}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Account, *Session, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, nil, apperr.Validation("Please enter all field")
	}
	a := &models.Account{Name: req.Name, Email: req.Email, Avatar: datatypes.NewJSONType(req.Avatar)}
	a.SetPassword(req.Password)
	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, nil, apperr.Conflict("User Already Exist")
		}
		return nil, nil, persistErr(err)
	}
	sess, err := s.issue(a.ID)
	if err != nil {
		return nil, nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("account registered", "account_id", a.ID)
	return a, sess, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*models.Account, *Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, nil, apperr.Validation("Please enter all field")
	}
	a, err := s.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, apperr.Unauthorized("Incorrect Email or Password")
		}
		return nil, nil, err
	}
	if !a.CheckPassword(req.Password) {
		return nil, nil, apperr.Unauthorized("Incorrect Email or Password")
	}
	sess, err := s.issue(a.ID)
	if err != nil {
		return nil, nil, err
	}
	return a, sess, nil
}

// Authenticate resolves a session token to its account.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Not Logged In")
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized("Not Logged In")
	}
	a, err := s.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Unauthorized("Not Logged In")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Account, error) {
	a, err := s.accounts.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	return a, err
}

func (s *Service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return apperr.Validation("Please enter all field")
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !a.CheckPassword(req.OldPassword) {
		return apperr.Validation("Incorrect Old Password")
	}
	a.SetPassword(req.NewPassword)
	return s.save(ctx, a)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*models.Account, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		a.Name = req.Name
	}
	if req.Email != "" {
		a.Email = req.Email
	}
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) AddToPlaylist(ctx context.Context, id, courseID string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	c, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Invalid Course Id")
		}
		return err
	}
	if lo.ContainsBy(a.Playlist, func(p models.PlaylistItem) bool { return p.CourseID == c.ID }) {
		return apperr.Conflict("Item Already Exist")
	}
	a.Playlist = append(a.Playlist, models.PlaylistItem{CourseID: c.ID, Poster: c.Poster.Data().URL})
	return s.save(ctx, a)
}

func (s *Service) RemoveFromPlaylist(ctx context.Context, id, courseID string) error {
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	a.Playlist = lo.Reject(a.Playlist, func(p models.PlaylistItem, _ int) bool { return p.CourseID == courseID })
	return s.save(ctx, a)
}

func (s *Service) List(ctx context.Context, req *store.ListRequest) (*store.ListResult[models.Account], error) {
	res, err := s.accounts.List(ctx, req)
	if errors.Is(err, store.ErrUnknownColumn) {
		return nil, apperr.Validation(err.Error())
	}
	return res, err
}

// ToggleRole flips a user between user and admin.
func (s *Service) ToggleRole(ctx context.Context, id string) (*models.Account, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Role = a.Role.Toggle()
	if err := s.save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.accounts.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	if err == nil {
		logctx.FromCtx(ctx, s.log).Infow("account deleted", "account_id", id)
	}
	return err
}

// TokenTTL is the lifetime of issued sessions.
func (s *Service) TokenTTL() time.Duration { return s.tokens.TTL() }

func (s *Service) save(ctx context.Context, a *models.Account) error {
	if err := s.accounts.Save(ctx, a); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return apperr.Conflict("User Already Exist")
		}
		return persistErr(err)
	}
	return nil
}

func (s *Service) issue(accountID string) (*Session, error) {
	token, exp, err := s.tokens.Generate(accountID)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return &Session{Token: token, ExpiresAt: exp}, nil
}

// persistErr turns model validation failures into 400s.
func persistErr(err error) error {
	if errors.Is(err, models.ErrInvalidAccount) {
		return apperr.Validation(err.Error())
	}
	return err
}

var Module = fx.Options(
	fx.Provide(NewService),
)
