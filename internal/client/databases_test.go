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

func TestDatabasesClient_CRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/databases" && r.Method == "POST":
			var req dataapi.DatabaseCreateRequest

			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "warehouse", req.Name)
			assert.Equal(t, "postgresql", req.Type)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dataapi.Database{ID: "db-1", Name: req.Name, Type: req.Type})
		case r.URL.Path == "/databases/db-1" && r.Method == "GET":
			_ = json.NewEncoder(w).Encode(dataapi.Database{ID: "db-1", Name: "warehouse", Port: 5432})
		case r.URL.Path == "/databases/db-1" && r.Method == "DELETE":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	created, err := client.Databases().Create(ctx, &dataapi.DatabaseCreateRequest{
		Name:         "warehouse",
		Type:         "postgresql",
		Host:         "db.internal",
		Port:         5432,
		DatabaseName: "warehouse",
		ProjectID:    "proj-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "db-1", created.ID)

	database, err := client.Databases().Get(ctx, "db-1")
	require.NoError(t, err)
	assert.Equal(t, 5432, database.Port)

	require.NoError(t, client.Databases().Delete(ctx, "db-1"))
}

func TestDatabasesClient_TestConnection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/db-1/test", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(dataapi.DatabaseConnectionResult{
			Connected: true,
			LatencyMs: 12,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.Databases().TestConnection(context.Background(), "db-1")
	require.NoError(t, err)
	assert.True(t, result.Connected)
	assert.Equal(t, 12, result.LatencyMs)
}

func TestDatabasesClient_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/db-1/query", r.URL.Path)

		var req dataapi.QueryRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "SELECT id, name FROM users", req.SQL)
		assert.Equal(t, 100, req.MaxRows)

		_ = json.NewEncoder(w).Encode(dataapi.QueryResult{
			Columns:  []string{"id", "name"},
			Rows:     []json.RawMessage{json.RawMessage(`["1","ada"]`)},
			RowCount: 1,
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.Databases().Query(context.Background(), "db-1", &dataapi.QueryRequest{
		SQL:     "SELECT id, name FROM users",
		MaxRows: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, result.Columns)
	assert.Equal(t, 1, result.RowCount)
}

func TestDatabasesClient_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/databases/db-1/execute", r.URL.Path)

		_ = json.NewEncoder(w).Encode(dataapi.ExecuteResult{AffectedRows: 3})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	result, err := client.Databases().Execute(context.Background(), "db-1", &dataapi.QueryRequest{
		SQL: "UPDATE users SET active = true",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.AffectedRows)
}

func TestDatabasesClient_Schema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/databases/db-1/tables":
			_ = json.NewEncoder(w).Encode([]dataapi.TableInfo{
				{Name: "users", RowCount: 1000},
				{Name: "orders", RowCount: 5000},
			})
		case "/databases/db-1/tables/users/schema":
			_ = json.NewEncoder(w).Encode(dataapi.TableSchema{
				Name: "users",
				Columns: []dataapi.ColumnInfo{
					{Name: "id", Type: "uuid", Primary: true},
					{Name: "name", Type: "text", Nullable: true},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	tables, err := client.Databases().ListTables(ctx, "db-1")
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	schema, err := client.Databases().GetTableSchema(ctx, "db-1", "users")
	require.NoError(t, err)
	assert.Equal(t, "users", schema.Name)
	assert.True(t, schema.Columns[0].Primary)
}
