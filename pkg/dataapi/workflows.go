package dataapi

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WorkflowStatus enumerates workflow lifecycle states.
type WorkflowStatus string

const (
	WorkflowStatusDraft    WorkflowStatus = "DRAFT"
	WorkflowStatusActive   WorkflowStatus = "ACTIVE"
	WorkflowStatusInactive WorkflowStatus = "INACTIVE"
	WorkflowStatusArchived WorkflowStatus = "ARCHIVED"
)

// Workflow represents a DataAPI workflow.
type Workflow struct {
	ID          string         `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string         `json:"name"                  yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Definition  string         `json:"definition"            yaml:"definition"`
	ProjectID   string         `json:"projectId"             yaml:"projectId"`
	UserID      string         `json:"userId"                yaml:"userId"`
	Status      WorkflowStatus `json:"status,omitempty"      yaml:"status,omitempty"`
	Version     int            `json:"version,omitempty"     yaml:"version,omitempty"`
	CreateTime  string         `json:"createTime,omitempty"  yaml:"createTime,omitempty"`
	UpdateTime  string         `json:"updateTime,omitempty"  yaml:"updateTime,omitempty"`
}

// WorkflowCreateRequest represents a request to create a workflow.
type WorkflowCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Definition is the workflow definition document, serialised as a string.
	Definition string `json:"definition" yaml:"definition"`
	ProjectID  string `json:"projectId"  yaml:"projectId"`
	UserID     string `json:"userId"     yaml:"userId"`
}

// Validate checks the request before it is sent.
func (r *WorkflowCreateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Definition, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("invalid workflow create request: %w", err)
	}

	return nil
}

// WorkflowUpdateRequest represents a request to update a workflow. Nil
// fields are left unchanged.
type WorkflowUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Definition  *string `json:"definition,omitempty"  yaml:"definition,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"   yaml:"projectId,omitempty"`
	UserID      *string `json:"userId,omitempty"      yaml:"userId,omitempty"`
}

// WorkflowExecution represents one execution of a workflow.
type WorkflowExecution struct {
	ExecutionID string          `json:"executionId"        yaml:"executionId"`
	Status      string          `json:"status"             yaml:"status"`
	Result      json.RawMessage `json:"result,omitempty"   yaml:"result,omitempty"`
	StartTime   string          `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime     string          `json:"endTime,omitempty"   yaml:"endTime,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"  yaml:"metadata,omitempty"`
}

// WorkflowExecutionStatus is the progress snapshot of a running execution.
type WorkflowExecutionStatus struct {
	ExecutionID string          `json:"executionId"           yaml:"executionId"`
	Status      string          `json:"status"                yaml:"status"`
	Progress    float64         `json:"progress"              yaml:"progress"`
	CurrentStep json.RawMessage `json:"currentStep,omitempty" yaml:"currentStep,omitempty"`
}

// WorkflowValidationResult reports whether a workflow definition is valid.
type WorkflowValidationResult struct {
	Valid    bool     `json:"isValid"            yaml:"isValid"`
	Errors   []string `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// WorkflowImportRequest imports a workflow from an exported definition.
type WorkflowImportRequest struct {
	Definition  json.RawMessage `json:"definition"            yaml:"definition"`
	Name        string          `json:"name"                  yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// WorkflowCloneRequest copies an existing workflow under a new name.
type WorkflowCloneRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
