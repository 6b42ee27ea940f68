// Package tracing wires OpenTelemetry into resourceid. All instrumentation is
// kept in a separate package so that callers which do not need tracing pay
// nothing beyond a no-op tracer.
package tracing
