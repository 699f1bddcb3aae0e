/*
Package types defines the domain records shared across SealCI services.

The controller owns the persistent Pipeline/Action/LogEntry records; the
scheduler and agent only ever hold transient copies of the wire-level action
request. Status values round-trip through their proto enum names so the
persistence layer and the gRPC surface agree on spelling.
*/
package types
