// Package client implements the bloglist command-line client: one
// subcommand per API operation plus an interactive browser.
package client
