// Package dataapi provides types, interfaces, and helpers for working with
// the DataAPI HTTP service.
//
// # Overview
//
// The dataapi package defines the domain types (e.g., Workflow, Project,
// Database, AIProvider, User) and the interfaces for resource-oriented
// clients (e.g., WorkflowsClient, ProjectsClient). A concrete implementation
// of these clients is provided by the dataapiclient package, which wires
// configuration, transport, authentication, and retry behavior. Most
// consumers should import dataapiclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/acproject/dataapi-sdks/pkg/dataapi"
//	  "github.com/acproject/dataapi-sdks/pkg/dataapiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dataapiclient.New(&dataapi.Config{
//	    BaseURL: "https://api.example.com/api",
//	    APIKey:  "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of workflows
//	  workflows, err := cli.Workflows().List(ctx, dataapi.NewQueryParams().WithSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = workflows
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (page, size, sort, filters).
// The package also provides a generic iterator for walking paginated results:
//
//	it := dataapi.NewPageIterator[dataapi.Workflow](ctx, cli.Workflows(), "/workflows", nil)
//	for it.HasNext() {
//	  wf, err := it.Next()
//	  ...
//	}
//
// # Errors
//
// All failures reported by the client carry a *dataapi.Error with a Kind tag
// describing the failure class. Use errors.As or the predicate helpers
// (IsNotFound, IsAuthentication, IsRateLimit, ...) to branch on them.
package dataapi
