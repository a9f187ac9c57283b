package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// ProjectsClient implements dataapi.ProjectsClient
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

// List implements dataapi.ProjectsClient.List
func (c *ProjectsClient) List(ctx context.Context, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Project], error) {
	return fetchPage[dataapi.Project](ctx, c.httpClient, "/projects", params)
}

// FetchPage implements dataapi.ProjectsClient.FetchPage
func (c *ProjectsClient) FetchPage(ctx context.Context, path string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Project], error) {
	return fetchPage[dataapi.Project](ctx, c.httpClient, path, params)
}

// Get implements dataapi.ProjectsClient.Get
func (c *ProjectsClient) Get(ctx context.Context, id string) (*dataapi.Project, error) {
	path := fmt.Sprintf("/projects/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project dataapi.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Create implements dataapi.ProjectsClient.Create
func (c *ProjectsClient) Create(ctx context.Context, request *dataapi.ProjectCreateRequest) (*dataapi.Project, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/projects", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if err := expectCreated("/projects", resp); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project dataapi.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Update implements dataapi.ProjectsClient.Update
func (c *ProjectsClient) Update(ctx context.Context, id string, request *dataapi.ProjectUpdateRequest) (*dataapi.Project, error) {
	path := fmt.Sprintf("/projects/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project dataapi.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Delete implements dataapi.ProjectsClient.Delete
func (c *ProjectsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/projects/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}

// ListMembers implements dataapi.ProjectsClient.ListMembers
func (c *ProjectsClient) ListMembers(ctx context.Context, id string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.ProjectMember], error) {
	path := fmt.Sprintf("/projects/%s/members", id)

	return fetchPage[dataapi.ProjectMember](ctx, c.httpClient, path, params)
}

// AddMember implements dataapi.ProjectsClient.AddMember
func (c *ProjectsClient) AddMember(ctx context.Context, id string, request *dataapi.ProjectMemberRequest) (*dataapi.ProjectMember, error) {
	path := fmt.Sprintf("/projects/%s/members", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding project member: %w", err)
	}

	var member dataapi.ProjectMember
	if err := json.Unmarshal(resp.Body, &member); err != nil {
		return nil, fmt.Errorf("parsing project member response: %w", err)
	}

	return &member, nil
}

// RemoveMember implements dataapi.ProjectsClient.RemoveMember
func (c *ProjectsClient) RemoveMember(ctx context.Context, id, userID string) error {
	path := fmt.Sprintf("/projects/%s/members/%s", id, userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("removing project member: %w", err)
	}

	return nil
}

// Statistics implements dataapi.ProjectsClient.Statistics
func (c *ProjectsClient) Statistics(ctx context.Context, id string) (*dataapi.ProjectStatistics, error) {
	path := fmt.Sprintf("/projects/%s/statistics", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project statistics: %w", err)
	}

	var stats dataapi.ProjectStatistics
	if err := json.Unmarshal(resp.Body, &stats); err != nil {
		return nil, fmt.Errorf("parsing project statistics response: %w", err)
	}

	return &stats, nil
}
