// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. A field is taken from
// the first source that sets it, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (path given by -c/-config or CONFIG)
//
// The main entry point is [GetClientConfig].
package config
