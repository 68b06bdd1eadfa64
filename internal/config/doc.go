// Package config resolves the editor's runtime settings from an
// optional TOML file and ED_-prefixed environment variables, layering
// environment over file over built-in defaults.
package config
