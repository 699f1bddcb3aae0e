/*
Package log provides structured logging for SealCI using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level.

# Usage

Initialize once at process startup, then derive child loggers per component:

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: false})

	logger := log.WithComponent("scheduler")
	logger.Info().Uint32("agent_id", id).Msg("Agent registered")

Field helpers exist for the identifiers that recur across the system:
WithComponent, WithAgentID, WithActionID and WithPipelineID. Console output
(the default) is meant for interactive use; pass JSONOutput for production.
*/
package log
