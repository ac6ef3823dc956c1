package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/exturl/fieldconfig"
	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/metrics"
	"github.com/jongio/exturl/urlutil"
)

// Tool names.
const (
	ToolNormalize = "normalize_url"
	ToolValidate  = "validate_url"
	ToolInspect   = "inspect_url"
)

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// RatePerSecond is the sustained call rate allowed per tool.
	RatePerSecond float64
	// Burst is the number of calls a tool accepts at once.
	Burst int
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{Name: "exturl", Version: "0.0.0-dev", RatePerSecond: 10, Burst: 20}
}

// Server is an MCP server bound to one field configuration.
type Server struct {
	cfg      *fieldconfig.Config
	mcp      *server.MCPServer
	limiters map[string]*rate.Limiter
	handlers map[string]server.ToolHandlerFunc
	log      *logutil.ComponentLogger
}

// NormalizeResult is returned by normalize_url.
type NormalizeResult struct {
	Input string `json:"input"`
	URL   string `json:"url"`
}

// ValidateResult is returned by validate_url.
type ValidateResult struct {
	URL     string `json:"url"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// InspectResult is returned by inspect_url.
type InspectResult struct {
	Input string `json:"input"`
	urlutil.Views
}

// New returns a Server using cfg, or the default configuration when cfg is
// nil.
func New(cfg *fieldconfig.Config, opts Options) *Server {
	if cfg == nil {
		cfg = fieldconfig.Default()
	}
	defaults := DefaultOptions()
	if opts.Name == "" {
		opts.Name = defaults.Name
	}
	if opts.Version == "" {
		opts.Version = defaults.Version
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = defaults.RatePerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = defaults.Burst
	}

	s := &Server{
		cfg:      cfg,
		mcp:      server.NewMCPServer(opts.Name, opts.Version, server.WithToolCapabilities(false), server.WithRecovery()),
		limiters: make(map[string]*rate.Limiter),
		handlers: make(map[string]server.ToolHandlerFunc),
		log:      logutil.NewLogger("mcpserver"),
	}

	s.addTool(mcp.NewTool(ToolNormalize,
		mcp.WithDescription("Normalize an external URL: add the default scheme, drop configured parts, strip trailing slashes. Returns an empty url when the input cannot be parsed."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL or bare host name to normalize")),
	), opts, s.handleNormalize)

	s.addTool(mcp.NewTool(ToolValidate,
		mcp.WithDescription("Check a URL against the validation pattern. An empty value is valid."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to validate")),
		mcp.WithString("pattern", mcp.Description("Optional regular expression that replaces the configured pattern")),
	), opts, s.handleValidate)

	s.addTool(mcp.NewTool(ToolInspect,
		mcp.WithDescription("Normalize a URL and return its domain, short domain, path, compact form and favicon URL."),
		mcp.WithString("url", mcp.Required(), mcp.Description("URL to inspect")),
	), opts, s.handleInspect)

	return s
}

type toolFunc func(ctx context.Context, args map[string]any) *mcp.CallToolResult

func (s *Server) addTool(tool mcp.Tool, opts Options, fn toolFunc) {
	limiter := rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst)
	s.limiters[tool.Name] = limiter

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !limiter.Allow() {
			s.log.Warn("rate limit exceeded", "tool", tool.Name)
			return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", tool.Name)), nil
		}
		s.log.Debug("tool call", "tool", tool.Name)
		return fn(ctx, argsMap(request)), nil
	}
	s.handlers[tool.Name] = handler
	s.mcp.AddTool(tool, handler)
}

// Tools returns the registered tool names.
func (s *Server) Tools() []string {
	return []string{ToolNormalize, ToolValidate, ToolInspect}
}

// Call invokes a tool directly, through the same rate limit as protocol
// calls.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args
	return handler(ctx, request)
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// Serve speaks the protocol over in and out until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func requireURL(args map[string]any) (string, *mcp.CallToolResult) {
	raw, ok := stringParam(args, "url")
	if !ok {
		return "", mcp.NewToolResultError(`missing required string argument "url"`)
	}
	return raw, nil
}

func (s *Server) handleNormalize(_ context.Context, args map[string]any) *mcp.CallToolResult {
	raw, errResult := requireURL(args)
	if errResult != nil {
		return errResult
	}
	canonical := s.cfg.Normalize(raw)
	metrics.RecordNormalize(canonical)
	return marshalResult(NormalizeResult{Input: raw, URL: canonical})
}

func (s *Server) handleValidate(_ context.Context, args map[string]any) *mcp.CallToolResult {
	raw, errResult := requireURL(args)
	if errResult != nil {
		return errResult
	}

	var valid bool
	if expr, ok := stringParam(args, "pattern"); ok && expr != "" {
		pattern, err := urlutil.CompilePattern(expr)
		if err != nil {
			return mcp.NewToolResultError(err.Error())
		}
		valid = urlutil.Validate(raw, pattern)
	} else {
		valid = s.cfg.Validate(raw)
	}
	metrics.RecordValidate(valid)

	result := ValidateResult{URL: raw, Valid: valid}
	if !valid {
		result.Message = urlutil.ValidationMessage
	}
	return marshalResult(result)
}

func (s *Server) handleInspect(_ context.Context, args map[string]any) *mcp.CallToolResult {
	raw, errResult := requireURL(args)
	if errResult != nil {
		return errResult
	}
	canonical := s.cfg.Normalize(raw)
	metrics.RecordNormalize(canonical)
	return marshalResult(InspectResult{Input: raw, Views: urlutil.Describe(canonical)})
}
