package remote

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"fittracker/fitness-app/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest is the body of a registration.
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	UF       string `json:"uf"`
	Password string `json:"password"`
	Level    string `json:"level"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	_, err := c.call(ctx, "login", http.MethodPost, []string{"userauth"}, "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &RemoteError{Op: "login", StatusCode: http.StatusOK, Message: "response carries no token", Err: errors.New("missing token")}
	}
	return resp.Token, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.call(ctx, "register", http.MethodPost, []string{"user"}, "", req, nil)
	return err
}

// UpdateUser sends the full profile; the remote API requires the bearer token.
func (c *Client) UpdateUser(ctx context.Context, token string, profile domain.Profile) error {
	_, err := c.call(ctx, "update user", http.MethodPut, []string{"user", strconv.Itoa(profile.ID)}, token, profile, nil)
	return err
}
