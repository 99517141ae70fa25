// Package config loads the service configuration from a YAML file.
//
// Everything has a working default: a zonemenu process started with no
// configuration at all serves the stock three-zone layout from a local
// database file. The file overrides selectively; absent fields keep their
// defaults.
package config
