package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

func TestProjectsClient_CRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/projects" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"content":       []dataapi.Project{{ID: "proj-1", Name: "analytics"}},
				"pageNumber":    1,
				"pageSize":      20,
				"totalElements": 1,
				"totalPages":    1,
				"first":         true,
				"last":          true,
			})
		case r.URL.Path == "/projects" && r.Method == "POST":
			var req dataapi.ProjectCreateRequest

			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "analytics", req.Name)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dataapi.Project{ID: "proj-1", Name: req.Name, OwnerID: req.OwnerID})
		case r.URL.Path == "/projects/proj-1" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(dataapi.Project{ID: "proj-1", Name: "analytics", Tags: []string{"prod"}})
		case r.URL.Path == "/projects/proj-1" && r.Method == "PUT":
			_ = json.NewEncoder(w).Encode(dataapi.Project{ID: "proj-1", Name: "renamed"})
		case r.URL.Path == "/projects/proj-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	page, err := client.Projects().List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)

	created, err := client.Projects().Create(ctx, &dataapi.ProjectCreateRequest{Name: "analytics", OwnerID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "proj-1", created.ID)

	project, err := client.Projects().Get(ctx, "proj-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, project.Tags)

	name := "renamed"
	updated, err := client.Projects().Update(ctx, "proj-1", &dataapi.ProjectUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)

	require.NoError(t, client.Projects().Delete(ctx, "proj-1"))
}

func TestProjectsClient_Members(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/projects/proj-1/members" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"content":       []dataapi.ProjectMember{{UserID: "user-1", Role: "owner"}},
				"pageNumber":    1,
				"pageSize":      20,
				"totalElements": 1,
				"totalPages":    1,
				"first":         true,
				"last":          true,
			})
		case r.URL.Path == "/projects/proj-1/members" && r.Method == "POST":
			var req dataapi.ProjectMemberRequest

			_ = json.NewDecoder(r.Body).Decode(&req)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dataapi.ProjectMember{UserID: req.UserID, Role: req.Role})
		case r.URL.Path == "/projects/proj-1/members/user-2" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	members, err := client.Projects().ListMembers(ctx, "proj-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "owner", members.Content[0].Role)

	added, err := client.Projects().AddMember(ctx, "proj-1", &dataapi.ProjectMemberRequest{UserID: "user-2", Role: "editor"})
	require.NoError(t, err)
	assert.Equal(t, "editor", added.Role)

	require.NoError(t, client.Projects().RemoveMember(ctx, "proj-1", "user-2"))
}

func TestProjectsClient_Statistics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/proj-1/statistics", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dataapi.ProjectStatistics{
			WorkflowCount:  4,
			DatabaseCount:  2,
			MemberCount:    3,
			ExecutionCount: 120,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	stats, err := client.Projects().Statistics(context.Background(), "proj-1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.WorkflowCount)
	assert.Equal(t, 120, stats.ExecutionCount)
}
