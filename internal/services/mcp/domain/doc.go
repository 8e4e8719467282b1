// Package domain holds the MCP tool and resource handlers for the MAN.3
// practice catalog and the decision simulation.
package domain
