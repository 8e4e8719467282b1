// Package service runs the MAN.3 MCP server: tool registration and the stdio
// lifecycle.
package service
