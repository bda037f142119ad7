// Package config provides configuration loading, merging, and validation
// facilities for the vault server and its client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the package defaults. The main
// entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
