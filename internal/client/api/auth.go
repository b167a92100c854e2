package api

import (
	"context"
	"net/http"

	"github.com/aislekit/aislekit/internal/client/models"
)

// Session is what the server hands back on register/login/refresh: the
// token pair plus the couple the account belongs to.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	CoupleID     string `json:"couple_id"`
}

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Partner1Name string `json:"partner1_name"`
	Partner2Name string `json:"partner2_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register creates an account plus its couple workspace and installs the
// returned session tokens on the client.
func (c *Client) Register(ctx context.Context, email, password, partner1, partner2 string) (*Session, error) {
	var s Session
	req := registerRequest{Email: email, Password: password, Partner1Name: partner1, Partner2Name: partner2}
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &s); err != nil {
		return nil, err
	}
	c.SetTokens(s.AccessToken, s.RefreshToken)
	return &s, nil
}

// Login authenticates and installs the returned session tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	if err := c.Do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	c.SetTokens(s.AccessToken, s.RefreshToken)
	return &s, nil
}

// refreshSession rotates the refresh token and installs the new pair.
func (c *Client) refreshSession(ctx context.Context) error {
	tokens := c.currentTokens()
	var s Session
	// doWithRetry, not Do: a failing refresh must not recurse into another refresh.
	if err := c.doWithRetry(ctx, http.MethodPost, "/auth/refresh", refreshRequest{RefreshToken: tokens.refresh}, &s); err != nil {
		return err
	}
	c.SetTokens(s.AccessToken, s.RefreshToken)
	return nil
}

// Tenant returns the tenant id for a couple id string.
func Tenant(coupleID string) models.TenantID { return models.TenantID(coupleID) }
