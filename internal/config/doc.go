// Package config provides configuration loading, merging, and validation
// facilities for the bloglist server and client.
//
// Server configuration is assembled from multiple sources; for every field
// the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source receive defaults before validation.
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
