// Package cli provides common CLI utilities for the kling command-line tool.
//
// This package includes:
//   - Credentials loading (~/.config/kling/credentials.json)
//   - Well-known paths
//   - Request file loading (YAML/JSON)
//   - Output formatting (JSON, YAML) with optional jq filtering
//   - Usage rendering and print helpers
//
// Example usage:
//
//	paths, err := cli.NewPaths("kling")
//	creds, err := cli.LoadCredentials(paths.CredentialsFile())
//
//	cli.Output(resp, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    JQ:     ".data.task_id",
//	})
package cli
