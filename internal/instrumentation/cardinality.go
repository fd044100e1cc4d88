package instrumentation

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with free-form values.

// Common operation types for Analytics API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList              = "list"
	OperationGet               = "get"
	OperationRunReport         = "run_report"
	OperationRunRealtimeReport = "run_realtime_report"
	OperationGetMetadata       = "get_metadata"
)

var knownOperations = map[string]bool{
	OperationList:              true,
	OperationGet:               true,
	OperationRunReport:         true,
	OperationRunRealtimeReport: true,
	OperationGetMetadata:       true,
}

// NormalizeOperation maps an operation name onto the fixed label set,
// collapsing anything unrecognized to "other". Operation names reach this
// package from call sites all over the codebase, so the label set is
// enforced here rather than trusted.
//
// Example:
//
//	NormalizeOperation("run_report")  // "run_report"
//	NormalizeOperation("frobnicate")  // "other"
//	NormalizeOperation("")            // "other"
func NormalizeOperation(operation string) string {
	if knownOperations[operation] {
		return operation
	}
	return "other"
}

// NormalizeService maps a service name onto the fixed label set. Only the
// two Analytics API families are valid label values.
func NormalizeService(service string) string {
	if service == ServiceAdmin || service == ServiceData {
		return service
	}
	return "other"
}
