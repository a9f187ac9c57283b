package dataapi

import (
	"encoding/json"
)

// Database represents a database managed through DataAPI.
type Database struct {
	ID           string `json:"id,omitempty"           yaml:"id,omitempty"`
	Name         string `json:"name"                   yaml:"name"`
	Type         string `json:"type"                   yaml:"type"`
	Host         string `json:"host,omitempty"         yaml:"host,omitempty"`
	Port         int    `json:"port,omitempty"         yaml:"port,omitempty"`
	DatabaseName string `json:"databaseName,omitempty" yaml:"databaseName,omitempty"`
	ProjectID    string `json:"projectId"              yaml:"projectId"`
	Status       string `json:"status,omitempty"       yaml:"status,omitempty"`
	CreateTime   string `json:"createTime,omitempty"   yaml:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"   yaml:"updateTime,omitempty"`
}

// DatabaseCreateRequest represents a request to register a database.
type DatabaseCreateRequest struct {
	Name         string `json:"name"                   yaml:"name"`
	Type         string `json:"type"                   yaml:"type"`
	Host         string `json:"host"                   yaml:"host"`
	Port         int    `json:"port"                   yaml:"port"`
	DatabaseName string `json:"databaseName"           yaml:"databaseName"`
	Username     string `json:"username,omitempty"     yaml:"username,omitempty"`
	Password     string `json:"password,omitempty"     yaml:"password,omitempty"`
	ProjectID    string `json:"projectId"              yaml:"projectId"`
}

// DatabaseUpdateRequest represents a request to update a database
// registration. Nil fields are left unchanged.
type DatabaseUpdateRequest struct {
	Name     *string `json:"name,omitempty"     yaml:"name,omitempty"`
	Host     *string `json:"host,omitempty"     yaml:"host,omitempty"`
	Port     *int    `json:"port,omitempty"     yaml:"port,omitempty"`
	Username *string `json:"username,omitempty" yaml:"username,omitempty"`
	Password *string `json:"password,omitempty" yaml:"password,omitempty"`
}

// DatabaseConnectionResult reports the outcome of a connectivity check.
type DatabaseConnectionResult struct {
	Connected bool   `json:"connected"          yaml:"connected"`
	Message   string `json:"message,omitempty"  yaml:"message,omitempty"`
	LatencyMs int    `json:"latencyMs,omitempty" yaml:"latencyMs,omitempty"`
}

// QueryRequest is a read query submitted to a database.
type QueryRequest struct {
	SQL        string            `json:"sql"                  yaml:"sql"`
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// MaxRows caps the number of rows returned; zero means the server default.
	MaxRows int `json:"maxRows,omitempty" yaml:"maxRows,omitempty"`
}

// QueryResult holds the rows produced by a read query.
type QueryResult struct {
	Columns  []string          `json:"columns"  yaml:"columns"`
	Rows     []json.RawMessage `json:"rows"     yaml:"rows"`
	RowCount int               `json:"rowCount" yaml:"rowCount"`
	// DurationMs is the server-side execution time.
	DurationMs int `json:"durationMs,omitempty" yaml:"durationMs,omitempty"`
}

// ExecuteResult reports the effect of a DML statement.
type ExecuteResult struct {
	AffectedRows int    `json:"affectedRows"        yaml:"affectedRows"`
	Message      string `json:"message,omitempty"   yaml:"message,omitempty"`
	DurationMs   int    `json:"durationMs,omitempty" yaml:"durationMs,omitempty"`
}

// TableInfo describes a table within a database.
type TableInfo struct {
	Name     string `json:"name"               yaml:"name"`
	RowCount int64  `json:"rowCount,omitempty" yaml:"rowCount,omitempty"`
	Comment  string `json:"comment,omitempty"  yaml:"comment,omitempty"`
}

// ColumnInfo describes one column of a table schema.
type ColumnInfo struct {
	Name     string `json:"name"              yaml:"name"`
	Type     string `json:"type"              yaml:"type"`
	Nullable bool   `json:"nullable"          yaml:"nullable"`
	Primary  bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// TableSchema is the full schema of a table.
type TableSchema struct {
	Name    string       `json:"name"    yaml:"name"`
	Columns []ColumnInfo `json:"columns" yaml:"columns"`
}
