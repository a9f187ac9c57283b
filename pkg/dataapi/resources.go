package dataapi

import (
	"context"
	"encoding/json"
)

// WorkflowsClient manages workflows and their executions.
type WorkflowsClient interface {
	List(ctx context.Context, params *QueryParams) (*PageResult[Workflow], error)
	Get(ctx context.Context, id string) (*Workflow, error)
	Create(ctx context.Context, request *WorkflowCreateRequest) (*Workflow, error)
	Update(ctx context.Context, id string, request *WorkflowUpdateRequest) (*Workflow, error)
	Delete(ctx context.Context, id string) error

	Execute(ctx context.Context, id string, input json.RawMessage) (*WorkflowExecution, error)
	ExecuteAsync(ctx context.Context, id string, input json.RawMessage) (string, error)
	GetExecutionStatus(ctx context.Context, executionID string) (*WorkflowExecutionStatus, error)
	GetExecutionResult(ctx context.Context, executionID string) (*WorkflowExecution, error)
	StopExecution(ctx context.Context, executionID string) error
	ExecutionHistory(ctx context.Context, id string, params *QueryParams) (*PageResult[WorkflowExecution], error)

	Validate(ctx context.Context, definition json.RawMessage) (*WorkflowValidationResult, error)
	Export(ctx context.Context, id string) (json.RawMessage, error)
	Import(ctx context.Context, request *WorkflowImportRequest) (*Workflow, error)
	Clone(ctx context.Context, id string, request *WorkflowCloneRequest) (*Workflow, error)

	// FetchPage adapts List to the PageFetcher interface for iteration.
	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[Workflow], error)
}

// ProjectsClient manages projects and their membership.
type ProjectsClient interface {
	List(ctx context.Context, params *QueryParams) (*PageResult[Project], error)
	Get(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, id string, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, id string) error

	ListMembers(ctx context.Context, id string, params *QueryParams) (*PageResult[ProjectMember], error)
	AddMember(ctx context.Context, id string, request *ProjectMemberRequest) (*ProjectMember, error)
	RemoveMember(ctx context.Context, id, userID string) error
	Statistics(ctx context.Context, id string) (*ProjectStatistics, error)

	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[Project], error)
}

// DatabasesClient manages database registrations and runs queries.
type DatabasesClient interface {
	List(ctx context.Context, params *QueryParams) (*PageResult[Database], error)
	Get(ctx context.Context, id string) (*Database, error)
	Create(ctx context.Context, request *DatabaseCreateRequest) (*Database, error)
	Update(ctx context.Context, id string, request *DatabaseUpdateRequest) (*Database, error)
	Delete(ctx context.Context, id string) error

	TestConnection(ctx context.Context, id string) (*DatabaseConnectionResult, error)
	Query(ctx context.Context, id string, request *QueryRequest) (*QueryResult, error)
	Execute(ctx context.Context, id string, request *QueryRequest) (*ExecuteResult, error)
	ListTables(ctx context.Context, id string) ([]TableInfo, error)
	GetTableSchema(ctx context.Context, id, table string) (*TableSchema, error)

	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[Database], error)
}

// AIProvidersClient manages AI providers and invokes their capabilities.
type AIProvidersClient interface {
	List(ctx context.Context, params *QueryParams) (*PageResult[AIProvider], error)
	Get(ctx context.Context, id string) (*AIProvider, error)
	Create(ctx context.Context, request *AIProviderCreateRequest) (*AIProvider, error)
	Update(ctx context.Context, id string, request *AIProviderUpdateRequest) (*AIProvider, error)
	Delete(ctx context.Context, id string) error

	Test(ctx context.Context, id string) (*AIProviderTestResult, error)
	ListModels(ctx context.Context, id string) ([]AIModel, error)

	// Invoke runs a generic capability. When request.Stream is set and
	// onChunk is non-nil, response chunks are delivered through onChunk
	// and the final response carries the accumulated output.
	Invoke(ctx context.Context, request *AIInvokeRequest, onChunk StreamChunkFunc) (*AIInvokeResponse, error)
	GenerateText(ctx context.Context, request *TextGenerationRequest) (*TextGenerationResult, error)
	ChatCompletion(ctx context.Context, request *ChatCompletionRequest) (*ChatCompletionResult, error)

	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[AIProvider], error)
}

// UsersClient manages user accounts and sessions.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) (*PageResult[User], error)
	Get(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, request *UserCreateRequest) (*User, error)
	Update(ctx context.Context, id string, request *UserUpdateRequest) (*User, error)
	Delete(ctx context.Context, id string) error

	GetCurrent(ctx context.Context) (*User, error)
	Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, request *PasswordChangeRequest) error

	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[User], error)
}
