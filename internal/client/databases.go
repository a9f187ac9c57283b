package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// DatabasesClient implements dataapi.DatabasesClient
type DatabasesClient struct {
	httpClient *http.Client
}

// NewDatabasesClient creates a new databases client
func NewDatabasesClient(httpClient *http.Client) *DatabasesClient {
	return &DatabasesClient{httpClient: httpClient}
}

// List implements dataapi.DatabasesClient.List
func (c *DatabasesClient) List(ctx context.Context, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Database], error) {
	return fetchPage[dataapi.Database](ctx, c.httpClient, "/databases", params)
}

// FetchPage implements dataapi.DatabasesClient.FetchPage
func (c *DatabasesClient) FetchPage(ctx context.Context, path string, params *dataapi.QueryParams) (*dataapi.PageResult[dataapi.Database], error) {
	return fetchPage[dataapi.Database](ctx, c.httpClient, path, params)
}

// Get implements dataapi.DatabasesClient.Get
func (c *DatabasesClient) Get(ctx context.Context, id string) (*dataapi.Database, error) {
	path := fmt.Sprintf("/databases/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting database: %w", err)
	}

	var database dataapi.Database
	if err := json.Unmarshal(resp.Body, &database); err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Create implements dataapi.DatabasesClient.Create
func (c *DatabasesClient) Create(ctx context.Context, request *dataapi.DatabaseCreateRequest) (*dataapi.Database, error) {
	resp, err := c.httpClient.Post(ctx, "/databases", request)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := expectCreated("/databases", resp); err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	var database dataapi.Database
	if err := json.Unmarshal(resp.Body, &database); err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Update implements dataapi.DatabasesClient.Update
func (c *DatabasesClient) Update(ctx context.Context, id string, request *dataapi.DatabaseUpdateRequest) (*dataapi.Database, error) {
	path := fmt.Sprintf("/databases/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating database: %w", err)
	}

	var database dataapi.Database
	if err := json.Unmarshal(resp.Body, &database); err != nil {
		return nil, fmt.Errorf("parsing database response: %w", err)
	}

	return &database, nil
}

// Delete implements dataapi.DatabasesClient.Delete
func (c *DatabasesClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/databases/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting database: %w", err)
	}

	return nil
}

// TestConnection implements dataapi.DatabasesClient.TestConnection. Any
// 2xx is success; other statuses are classified as usual.
func (c *DatabasesClient) TestConnection(ctx context.Context, id string) (*dataapi.DatabaseConnectionResult, error) {
	path := fmt.Sprintf("/databases/%s/test", id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("testing database connection: %w", err)
	}

	var result dataapi.DatabaseConnectionResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing connection test response: %w", err)
	}

	return &result, nil
}

// Query implements dataapi.DatabasesClient.Query
func (c *DatabasesClient) Query(ctx context.Context, id string, request *dataapi.QueryRequest) (*dataapi.QueryResult, error) {
	path := fmt.Sprintf("/databases/%s/query", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	var result dataapi.QueryResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	return &result, nil
}

// Execute implements dataapi.DatabasesClient.Execute
func (c *DatabasesClient) Execute(ctx context.Context, id string, request *dataapi.QueryRequest) (*dataapi.ExecuteResult, error) {
	path := fmt.Sprintf("/databases/%s/execute", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("executing database statement: %w", err)
	}

	var result dataapi.ExecuteResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing execute response: %w", err)
	}

	return &result, nil
}

// ListTables implements dataapi.DatabasesClient.ListTables
func (c *DatabasesClient) ListTables(ctx context.Context, id string) ([]dataapi.TableInfo, error) {
	path := fmt.Sprintf("/databases/%s/tables", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing database tables: %w", err)
	}

	var tables []dataapi.TableInfo
	if err := json.Unmarshal(resp.Body, &tables); err != nil {
		return nil, fmt.Errorf("parsing tables response: %w", err)
	}

	return tables, nil
}

// GetTableSchema implements dataapi.DatabasesClient.GetTableSchema
func (c *DatabasesClient) GetTableSchema(ctx context.Context, id, table string) (*dataapi.TableSchema, error) {
	path := fmt.Sprintf("/databases/%s/tables/%s/schema", id, table)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting table schema: %w", err)
	}

	var schema dataapi.TableSchema
	if err := json.Unmarshal(resp.Body, &schema); err != nil {
		return nil, fmt.Errorf("parsing table schema response: %w", err)
	}

	return &schema, nil
}
