// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the server API adapter, and the local note
// cache into a single process lifecycle.
package client
