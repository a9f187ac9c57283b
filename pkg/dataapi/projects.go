package dataapi

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project represents a DataAPI project.
type Project struct {
	ID          string            `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	OwnerID     string            `json:"ownerId"               yaml:"ownerId"`
	Status      string            `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string          `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"    yaml:"settings,omitempty"`
	CreateTime  string            `json:"createTime,omitempty"  yaml:"createTime,omitempty"`
	UpdateTime  string            `json:"updateTime,omitempty"  yaml:"updateTime,omitempty"`
}

// ProjectCreateRequest represents a request to create a project.
type ProjectCreateRequest struct {
	Name        string            `json:"name"                  yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	OwnerID     string            `json:"ownerId"               yaml:"ownerId"`
	Tags        []string          `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"    yaml:"settings,omitempty"`
}

// Validate checks the request before it is sent.
func (r *ProjectCreateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
	)
	if err != nil {
		return fmt.Errorf("invalid project create request: %w", err)
	}

	return nil
}

// ProjectUpdateRequest represents a request to update a project. Nil fields
// are left unchanged.
type ProjectUpdateRequest struct {
	Name        *string           `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string           `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Settings    map[string]string `json:"settings,omitempty"    yaml:"settings,omitempty"`
}

// ProjectMember is a user's membership in a project.
type ProjectMember struct {
	UserID   string `json:"userId"             yaml:"userId"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	Role     string `json:"role"               yaml:"role"`
	JoinedAt string `json:"joinedAt,omitempty" yaml:"joinedAt,omitempty"`
}

// ProjectMemberRequest adds a member to a project.
type ProjectMemberRequest struct {
	UserID string `json:"userId" yaml:"userId"`
	Role   string `json:"role"   yaml:"role"`
}

// ProjectStatistics summarises activity within a project.
type ProjectStatistics struct {
	WorkflowCount  int `json:"workflowCount"  yaml:"workflowCount"`
	DatabaseCount  int `json:"databaseCount"  yaml:"databaseCount"`
	MemberCount    int `json:"memberCount"    yaml:"memberCount"`
	ExecutionCount int `json:"executionCount" yaml:"executionCount"`
}
