// Package config provides configuration loading, merging, and validation
// facilities for the signup server and the terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
//
// The signup validation thresholds are not configuration: they are fixed
// constants of the validators package.
package config
