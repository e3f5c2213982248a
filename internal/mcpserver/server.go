// Package mcpserver exposes project validation, export, preview and
// inspection as MCP tools so agents can drive the compiler.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/inspect"
	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/preview"
	"github.com/agentic-research/faceplate/internal/svgopt"
	"github.com/agentic-research/faceplate/internal/validate"
)

// Config holds the dependencies shared by every tool call.
type Config struct {
	Logger *slog.Logger
	// Export is the base option set; tool arguments override it per call.
	Export  bundle.Options
	Preview preview.Options
	// OutDir receives archives and folders when a call names no output.
	OutDir  string
	History bundle.Recorder
	// Previewer publishes previews. Its Opener is normally
	// preview.NoOpener since the agent opens the URL itself.
	Previewer *preview.Previewer
}

// Server is the MCP tool server.
type Server struct {
	cfg Config
	mcp *server.MCPServer
}

// New builds a server with every tool registered.
func New(version string, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	s := &Server{
		cfg: cfg,
		mcp: server.NewMCPServer("faceplate", version, server.WithToolCapabilities(false)),
	}

	s.mcp.AddTool(mcp.NewTool("validate_project",
		mcp.WithDescription("Run the pre-export checks on a saved project and list blocking errors and warnings."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the project JSON file")),
		mcp.WithBoolean("include_dev", mcp.Description("Also check developer windows")),
	), s.validateProject)

	s.mcp.AddTool(mcp.NewTool("export_project",
		mcp.WithDescription("Export a project (or one window) as a zip archive or folder of web assets."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the project JSON file")),
		mcp.WithString("window", mcp.Description("Export only this window id")),
		mcp.WithString("out", mcp.Description("Output directory")),
		mcp.WithBoolean("folder", mcp.Description("Write a folder instead of a zip archive")),
		mcp.WithBoolean("include_dev", mcp.Description("Include developer windows")),
		mcp.WithBoolean("optimize", mcp.Description("Optimize SVG assets (default true)")),
	), s.exportProject)

	s.mcp.AddTool(mcp.NewTool("preview_project",
		mcp.WithDescription("Render a live preview and return a temporary URL serving it."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the project JSON file")),
		mcp.WithString("window", mcp.Description("Preview only this window id")),
	), s.previewProject)

	s.mcp.AddTool(mcp.NewTool("optimize_svg",
		mcp.WithDescription("Losslessly shrink an SVG document and report the savings."),
		mcp.WithString("svg", mcp.Required(), mcp.Description("SVG markup")),
	), s.optimizeSVG)

	s.mcp.AddTool(mcp.NewTool("inspect_project",
		mcp.WithDescription("Query a saved project with a JSONPath expression."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the project JSON file")),
		mcp.WithString("query", mcp.Required(), mcp.Description("JSONPath, e.g. $.elements[?(@.type == 'knob')].name")),
	), s.inspectProject)

	return s
}

// MCP returns the underlying server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio serves tools over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error { return server.ServeStdio(s.mcp) }

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) validateProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := model.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res := validate.Windows(model.NewIndex(snap.Elements), snap.ExportWindows(req.GetBool("include_dev", false)))
	return jsonResult(res)
}

func (s *Server) exportProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := model.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := s.cfg.Export
	opts.Optimize = req.GetBool("optimize", opts.Optimize)
	opts.IncludeDeveloperWindows = req.GetBool("include_dev", opts.IncludeDeveloperWindows)
	if req.GetBool("folder", false) {
		opts.Delivery = bundle.DeliveryFolder
	}
	out := req.GetString("out", s.cfg.OutDir)

	e := &bundle.Exporter{
		Logger:    s.cfg.Logger,
		Archive:   bundle.NewOSArchiveSink(out),
		Directory: bundle.OSDirectory(out),
		History:   s.cfg.History,
	}
	var res bundle.Result
	if id := req.GetString("window", ""); id != "" {
		res = e.ExportWindow(ctx, snap, id, opts)
	} else {
		res = e.ExportProject(ctx, snap, opts)
	}
	if !res.OK {
		return mcp.NewToolResultError(res.Message), nil
	}
	return jsonResult(res)
}

func (s *Server) previewProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if s.cfg.Previewer == nil {
		return mcp.NewToolResultError("preview is not available"), nil
	}
	snap, err := model.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var res preview.Result
	if id := req.GetString("window", ""); id != "" {
		res = s.cfg.Previewer.PreviewWindow(ctx, snap, id, s.cfg.Preview)
	} else {
		res = s.cfg.Previewer.PreviewProject(ctx, snap, s.cfg.Preview)
	}
	if res.URL == "" {
		return mcp.NewToolResultError(res.Message), nil
	}
	return mcp.NewToolResultText(res.URL), nil
}

func (s *Server) optimizeSVG(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svg, err := req.RequireString("svg")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := svgopt.Optimize(svg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(res)
}

func (s *Server) inspectProject(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := inspect.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	got, err := inspect.Query(doc, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(inspect.Format(got)), nil
}
