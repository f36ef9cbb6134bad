// Package config defines the format-agnostic package definition that drives
// a manifest build, along with the Loader interface implemented by the HCL
// and YAML adapters.
//
// The `config.Model` is the single source of truth for the app package.
// Concrete loaders live in separate packages.
package config
