package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/man3/internal/services/mcp/domain"
)

const (
	serverName    = "man3"
	serverVersion = "0.1.0"
)

// Config wires the MCP server.
type Config struct {
	// Catalog serves practices and simulation scenarios; nil uses the
	// compiled-in catalog.
	Catalog domain.CatalogSource
}

// Server hosts the MCP tools over one transport.
type Server struct {
	mcpServer *mcp.Server
}

type registrationTarget interface {
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
}

// New registers every tool and resource once.
func New(cfg Config) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerPracticeTools(mcpServer, cfg.Catalog)
	registerSimulationTools(mcpServer, domain.NewSimulation(cfg.Catalog))
	registerResources(mcpServer, cfg.Catalog)
	return &Server{mcpServer: mcpServer}
}

func registerPracticeTools(server *mcp.Server, source domain.CatalogSource) {
	mcp.AddTool(server, domain.PracticeListTool(), domain.PracticeListHandler(source))
	mcp.AddTool(server, domain.PracticeGetTool(), domain.PracticeGetHandler(source))
}

func registerSimulationTools(server *mcp.Server, sim *domain.Simulation) {
	mcp.AddTool(server, domain.SimulationStartTool(), domain.SimulationStartHandler(sim))
	mcp.AddTool(server, domain.SimulationChooseTool(), domain.SimulationChooseHandler(sim))
	mcp.AddTool(server, domain.SimulationAdvanceTool(), domain.SimulationAdvanceHandler(sim))
	mcp.AddTool(server, domain.SimulationStateTool(), domain.SimulationStateHandler(sim))
}

func registerResources(target registrationTarget, source domain.CatalogSource) {
	target.AddResourceTemplate(domain.PracticeResourceTemplate(), domain.PracticeResourceHandler(source))
}

// Run serves MCP on stdio until the client disconnects or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return New(cfg).Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport treats cancellation as a clean shutdown.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
