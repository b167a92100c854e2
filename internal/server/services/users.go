// Package services contains server-side business logic: account and session
// handling plus presigned object-storage access for document payloads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/dbx"
	"github.com/aislekit/aislekit/internal/server/auth"
	sc "github.com/aislekit/aislekit/internal/server/config"
	"github.com/aislekit/aislekit/internal/server/models"
	"github.com/aislekit/aislekit/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Session bundles the token pair with the couple workspace it is scoped to.
type Session struct {
	AccessToken  string
	RefreshToken string
	CoupleID     string
}

// UserService handles registration, login, and refresh-token rotation.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates the couple workspace and its first account in one
// transaction and returns a ready session. A duplicate email yields
// common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password, partner1, partner2 string) (*Session, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var session *Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		couple, err := s.repomanager.Couples(tx).Create(ctx, &models.Couple{
			Partner1Name: partner1,
			Partner2Name: partner2,
		})
		if err != nil {
			return fmt.Errorf("error creating couple: %w", err)
		}

		user, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:        email,
			PasswordHash: hash,
			CoupleID:     couple.ID,
		})
		if err != nil {
			return err
		}

		session, err = s.generateSession(ctx, user.ID, user.CoupleID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Login verifies the credentials and, on success, returns a new Session.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrUnauthorized
	}
	return s.generateSession(ctx, user.ID, user.CoupleID, s.db)
}

// Refresh validates a refresh token, rotates it transactionally, and returns
// a fresh Session. Expired tokens yield common.ErrRefreshTokenExpired.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading token owner: %w", err)
	}

	var session *Session
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		session, genErr = s.generateSession(ctx, user.ID, user.CoupleID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return session, nil
}

// generateSession mints an access token and stores a fresh opaque refresh
// token through the given handle (plain connection or transaction).
func (s *UserService) generateSession(ctx context.Context, userID, coupleID string, db dbx.DBTX) (*Session, error) {
	access, err := auth.GenerateToken(userID, coupleID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating access token: %w", err)
	}

	refresh := uuid.NewString()
	if err := s.repomanager.RefreshTokens(db).Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &Session{AccessToken: access, RefreshToken: refresh, CoupleID: coupleID}, nil
}
