// Package driving defines the interfaces that outer adapters call INTO core.
//
// These are the "driving" or "primary" ports. The CLI, TUI and MCP server
// depend only on these interfaces.
package driving
