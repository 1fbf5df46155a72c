package kling

import (
	"context"
	"encoding/json"
	"net/http"
)

// AccountService provides account operations.
type AccountService struct {
	client *Client
}

func newAccountService(client *Client) *AccountService {
	return &AccountService{client: client}
}

// GetInfo returns the account information (balance, resource packs).
func (s *AccountService) GetInfo(ctx context.Context) (json.RawMessage, error) {
	return s.client.http.request(ctx, http.MethodGet, "/account/info", nil)
}
