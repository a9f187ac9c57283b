// Package dataapiclient provides the primary entry point for constructing a
// DataAPI client that implements the dataapi.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the dataapi package. Most
// applications should import dataapiclient to build a client, then use the
// returned dataapi.Client to access resource-specific clients, for example
// Workflows(), Projects(), Users(), etc.
//
// Quick start
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
//
//	  // Minimal: just a base URL (no auth).
//	  cli, err := dataapiclient.NewWithEndpoint("https://api.example.com/api")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = dataapiclient.NewWithToken("https://api.example.com/api", "eyJhbGciOi...")
//
//	  // Or with a full config, picking a preset and overriding fields:
//	  config := dataapi.ProductionConfig("https://api.example.com/api")
//	  config.APIKey = "service-key"
//	  cli, err = dataapiclient.New(config)
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the dataapi.Client interface
//	  workflows, err := cli.Workflows().List(ctx, dataapi.NewQueryParams().WithSize(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = workflows
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithToken, NewWithAPIKey, and NewWithBasicAuth that wrap New with the
// appropriate configuration, and NewWithAuthProvider for callers that bring
// their own dataapi.AuthProvider.
package dataapiclient
