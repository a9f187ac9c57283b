package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// UsersClient implements dataapi.UsersClient
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List implements dataapi.UsersClient.List
func (c *UsersClient) List(ctx context.Context, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.User], error) {
	return fetchPage[dataapi.User](ctx, c.httpClient, "/users", params)
}

// FetchPage implements dataapi.UsersClient.FetchPage
func (c *UsersClient) FetchPage(ctx context.Context, path string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.User], error) {
	return fetchPage[dataapi.User](ctx, c.httpClient, path, params)
}

// Get implements dataapi.UsersClient.Get
func (c *UsersClient) Get(ctx context.Context, id string) (*dataapi.User, error) {
	path := fmt.Sprintf("/users/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user dataapi.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Create implements dataapi.UsersClient.Create
func (c *UsersClient) Create(ctx context.Context, request *dataapi.UserCreateRequest) (*dataapi.User, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/users", request)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := expectCreated("/users", resp); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var user dataapi.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Update implements dataapi.UsersClient.Update
func (c *UsersClient) Update(ctx context.Context, id string, request *dataapi.UserUpdateRequest) (*dataapi.User, error) {
	path := fmt.Sprintf("/users/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user dataapi.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements dataapi.UsersClient.Delete
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/users/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

// GetCurrent implements dataapi.UsersClient.GetCurrent
func (c *UsersClient) GetCurrent(ctx context.Context) (*dataapi.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user dataapi.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Login implements dataapi.UsersClient.Login
func (c *UsersClient) Login(ctx context.Context, request *dataapi.LoginRequest) (*dataapi.LoginResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/users/login", request)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	var login dataapi.LoginResponse
	if err := json.Unmarshal(resp.Body, &login); err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}

	return &login, nil
}

// Logout implements dataapi.UsersClient.Logout
func (c *UsersClient) Logout(ctx context.Context) error {
	_, err := c.httpClient.Post(ctx, "/users/logout", nil)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// ChangePassword implements dataapi.UsersClient.ChangePassword
func (c *UsersClient) ChangePassword(ctx context.Context, request *dataapi.PasswordChangeRequest) error {
	_, err := c.httpClient.Post(ctx, "/users/change-password", request)
	if err != nil {
		return fmt.Errorf("changing password: %w", err)
	}

	return nil
}
