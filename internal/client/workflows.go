package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// WorkflowsClient implements dataapi.WorkflowsClient
type WorkflowsClient struct {
	httpClient *http.Client
}

// NewWorkflowsClient creates a new workflows client
func NewWorkflowsClient(httpClient *http.Client) *WorkflowsClient {
	return &WorkflowsClient{httpClient: httpClient}
}

// List implements dataapi.WorkflowsClient.List
func (c *WorkflowsClient) List(ctx context.Context, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Workflow], error) {
	return fetchPage[dataapi.Workflow](ctx, c.httpClient, "/workflows", params)
}

// FetchPage implements dataapi.WorkflowsClient.FetchPage
func (c *WorkflowsClient) FetchPage(ctx context.Context, path string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Workflow], error) {
	return fetchPage[dataapi.Workflow](ctx, c.httpClient, path, params)
}

// Get implements dataapi.WorkflowsClient.Get
func (c *WorkflowsClient) Get(ctx context.Context, id string) (*dataapi.Workflow, error) {
	path := fmt.Sprintf("/workflows/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting workflow: %w", err)
	}

	var workflow dataapi.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}

// Create implements dataapi.WorkflowsClient.Create
func (c *WorkflowsClient) Create(ctx context.Context, request *dataapi.WorkflowCreateRequest) (*dataapi.Workflow, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/workflows", request)
	if err != nil {
		return nil, fmt.Errorf("creating workflow: %w", err)
	}

	if err := expectCreated("/workflows", resp); err != nil {
		return nil, fmt.Errorf("creating workflow: %w", err)
	}

	var workflow dataapi.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}

// Update implements dataapi.WorkflowsClient.Update
func (c *WorkflowsClient) Update(ctx context.Context, id string, request *dataapi.WorkflowUpdateRequest) (*dataapi.Workflow, error) {
	path := fmt.Sprintf("/workflows/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating workflow: %w", err)
	}

	var workflow dataapi.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}

// Delete implements dataapi.WorkflowsClient.Delete
func (c *WorkflowsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/workflows/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting workflow: %w", err)
	}

	return nil
}

// Execute implements dataapi.WorkflowsClient.Execute
func (c *WorkflowsClient) Execute(ctx context.Context, id string, input json.RawMessage) (*dataapi.WorkflowExecution, error) {
	path := fmt.Sprintf("/workflows/%s/execute", id)

	resp, err := c.httpClient.Post(ctx, path, input)
	if err != nil {
		return nil, fmt.Errorf("executing workflow: %w", err)
	}

	var execution dataapi.WorkflowExecution
	if err := json.Unmarshal(resp.Body, &execution); err != nil {
		return nil, fmt.Errorf("parsing execution response: %w", err)
	}

	return &execution, nil
}

// ExecuteAsync implements dataapi.WorkflowsClient.ExecuteAsync
func (c *WorkflowsClient) ExecuteAsync(ctx context.Context, id string, input json.RawMessage) (string, error) {
	path := fmt.Sprintf("/workflows/%s/execute-async", id)

	resp, err := c.httpClient.Post(ctx, path, input)
	if err != nil {
		return "", fmt.Errorf("executing workflow asynchronously: %w", err)
	}

	var result struct {
		ExecutionID string `json:"executionId"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return "", fmt.Errorf("parsing async execution response: %w", err)
	}

	return result.ExecutionID, nil
}

// GetExecutionStatus implements dataapi.WorkflowsClient.GetExecutionStatus
func (c *WorkflowsClient) GetExecutionStatus(ctx context.Context, executionID string) (*dataapi.WorkflowExecutionStatus, error) {
	path := fmt.Sprintf("/workflows/executions/%s/status", executionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting execution status: %w", err)
	}

	var status dataapi.WorkflowExecutionStatus
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("parsing execution status response: %w", err)
	}

	return &status, nil
}

// GetExecutionResult implements dataapi.WorkflowsClient.GetExecutionResult
func (c *WorkflowsClient) GetExecutionResult(ctx context.Context, executionID string) (*dataapi.WorkflowExecution, error) {
	path := fmt.Sprintf("/workflows/executions/%s/result", executionID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting execution result: %w", err)
	}

	var execution dataapi.WorkflowExecution
	if err := json.Unmarshal(resp.Body, &execution); err != nil {
		return nil, fmt.Errorf("parsing execution result response: %w", err)
	}

	return &execution, nil
}

// StopExecution implements dataapi.WorkflowsClient.StopExecution
func (c *WorkflowsClient) StopExecution(ctx context.Context, executionID string) error {
	path := fmt.Sprintf("/workflows/executions/%s/stop", executionID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("stopping execution: %w", err)
	}

	return nil
}

// ExecutionHistory implements dataapi.WorkflowsClient.ExecutionHistory
func (c *WorkflowsClient) ExecutionHistory(ctx context.Context, id string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.WorkflowExecution], error) {
	path := fmt.Sprintf("/workflows/%s/executions", id)

	return fetchPage[dataapi.WorkflowExecution](ctx, c.httpClient, path, params)
}

// Validate implements dataapi.WorkflowsClient.Validate
func (c *WorkflowsClient) Validate(ctx context.Context, definition json.RawMessage) (*dataapi.WorkflowValidationResult, error) {
	resp, err := c.httpClient.Post(ctx, "/workflows/validate", definition)
	if err != nil {
		return nil, fmt.Errorf("validating workflow definition: %w", err)
	}

	var result dataapi.WorkflowValidationResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing validation response: %w", err)
	}

	return &result, nil
}

// Export implements dataapi.WorkflowsClient.Export
func (c *WorkflowsClient) Export(ctx context.Context, id string) (json.RawMessage, error) {
	path := fmt.Sprintf("/workflows/%s/export", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("exporting workflow: %w", err)
	}

	return json.RawMessage(resp.Body), nil
}

// Import implements dataapi.WorkflowsClient.Import
func (c *WorkflowsClient) Import(ctx context.Context, request *dataapi.WorkflowImportRequest) (*dataapi.Workflow, error) {
	resp, err := c.httpClient.Post(ctx, "/workflows/import", request)
	if err != nil {
		return nil, fmt.Errorf("importing workflow: %w", err)
	}

	var workflow dataapi.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}

// Clone implements dataapi.WorkflowsClient.Clone
func (c *WorkflowsClient) Clone(ctx context.Context, id string, request *dataapi.WorkflowCloneRequest) (*dataapi.Workflow, error) {
	path := fmt.Sprintf("/workflows/%s/clone", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("cloning workflow: %w", err)
	}

	var workflow dataapi.Workflow
	if err := json.Unmarshal(resp.Body, &workflow); err != nil {
		return nil, fmt.Errorf("parsing workflow response: %w", err)
	}

	return &workflow, nil
}
