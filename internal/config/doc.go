// Package config provides configuration loading, merging, and validation
// facilities for the composer.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The environment profile comes from NODE_ENV or --env. When neither is set
// the builder applies [models.DefaultProfile] and records it in
// StructuredConfig.ProfileDefaulted so the caller can report it.
//
// The main entry point is [Load].
package config
