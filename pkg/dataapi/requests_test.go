package dataapi_test

import (
	"testing"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := &dataapi.WorkflowCreateRequest{
		Name:       "ingest",
		Definition: `{"steps":[]}`,
		ProjectID:  "proj-1",
	}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&dataapi.WorkflowCreateRequest{Definition: "{}"}).Validate())
	assert.Error(t, (&dataapi.WorkflowCreateRequest{Name: "ingest"}).Validate())
}

func TestProjectCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&dataapi.ProjectCreateRequest{Name: "analytics"}).Validate())
	assert.Error(t, (&dataapi.ProjectCreateRequest{}).Validate())
}

func TestUserCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := &dataapi.UserCreateRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "secret",
	}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&dataapi.UserCreateRequest{Username: "ada", Password: "secret"}).Validate())
	assert.Error(t, (&dataapi.UserCreateRequest{Username: "ada", Email: "not-an-email", Password: "secret"}).Validate())
}
