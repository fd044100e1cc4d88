package server

import (
	"context"
	"log/slog"
	"sync"

	"google.golang.org/api/option"

	"github.com/teemow/analytics-mcp/internal/admin"
	"github.com/teemow/analytics-mcp/internal/google"
	"github.com/teemow/analytics-mcp/internal/instrumentation"
	"github.com/teemow/analytics-mcp/internal/logging"
	"github.com/teemow/analytics-mcp/internal/property"
	"github.com/teemow/analytics-mcp/internal/reporting"
)

// ServerContext holds the context for the MCP server. The Admin and Data
// API clients are created lazily on first use and cached for the process
// lifetime; credential resolution happens once, on whichever client is
// requested first. All accessors are safe for concurrent use.
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	quotaProject string

	mu          sync.Mutex
	clientOpts  []option.ClientOption
	adminClient *admin.Client
	dataClient  *reporting.Client
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	shutdown    bool
}

// NewServerContext creates a new server context. quotaProject optionally
// names the cloud project billed for API quota; when empty the
// GOOGLE_CLOUD_PROJECT environment variable is consulted at credential
// resolution time. No credentials are resolved here, so a server can start
// before credentials exist and fail per call instead.
func NewServerContext(ctx context.Context, quotaProject string) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		quotaProject: quotaProject,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// clientOptions resolves Application Default Credentials once and caches
// the resulting client options. Callers must hold sc.mu.
func (sc *ServerContext) clientOptions() ([]option.ClientOption, error) {
	if sc.clientOpts != nil {
		return sc.clientOpts, nil
	}

	opts, err := google.ClientOptions(sc.ctx, sc.quotaProject)
	if err != nil {
		return nil, err
	}
	sc.clientOpts = opts
	return opts, nil
}

// AdminClient returns the cached Analytics Admin API client, creating it on
// first use. Credential failures are returned to the caller and the next
// call retries, so a transiently broken credential file does not wedge the
// server permanently.
func (sc *ServerContext) AdminClient() (*admin.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.adminClient != nil {
		return sc.adminClient, nil
	}

	opts, err := sc.clientOptions()
	if err != nil {
		return nil, err
	}

	client, err := admin.NewClient(sc.ctx, opts...)
	if err != nil {
		return nil, err
	}

	slog.Debug("created Analytics Admin client", logging.Service("admin"))
	sc.adminClient = client
	return client, nil
}

// DataClient returns the cached Analytics Data API client, creating it on
// first use.
func (sc *ServerContext) DataClient() (*reporting.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.dataClient != nil {
		return sc.dataClient, nil
	}

	opts, err := sc.clientOptions()
	if err != nil {
		return nil, err
	}

	client, err := reporting.NewClient(sc.ctx, opts...)
	if err != nil {
		return nil, err
	}

	slog.Debug("created Analytics Data client", logging.Service("data"))
	sc.dataClient = client
	return client, nil
}

// Resolver returns a property resolver backed by the Admin client, for
// turning free-text property references into canonical resource names.
func (sc *ServerContext) Resolver() (*property.Resolver, error) {
	client, err := sc.AdminClient()
	if err != nil {
		return nil, err
	}
	return property.NewResolver(client), nil
}

// SetAdminClient sets the Admin API client. Used by tests to inject stubs.
func (sc *ServerContext) SetAdminClient(client *admin.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.adminClient = client
}

// SetDataClient sets the Data API client. Used by tests to inject stubs.
func (sc *ServerContext) SetDataClient(client *reporting.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.dataClient = client
}

// SetInstrumentation configures the metrics recorder and audit logger used
// by instrumented tool handlers. Both may be nil when instrumentation is
// disabled.
func (sc *ServerContext) SetInstrumentation(metrics *instrumentation.Metrics, auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
	sc.auditLogger = auditLogger
}

// Metrics returns the metrics recorder, or nil when not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, or nil when not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.auditLogger
}

// QuotaProject returns the configured quota project, if any.
func (sc *ServerContext) QuotaProject() string {
	return sc.quotaProject
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
