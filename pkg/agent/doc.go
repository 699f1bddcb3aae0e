/*
Package agent implements the SealCI worker process.

An agent registers with the scheduler at startup, then runs two permanent
tasks: a gRPC server answering ExecutionAction calls from the scheduler, and
a health reporter that samples the host every second and forwards only
significant changes (>=5% CPU or memory movement) over a client stream.

Each action request gets its own ephemeral container. The engine clones the
repository into /<action_id>, runs the commands in order with that working
directory, streams their combined output back as log entries, and removes
the container on every exit path — success, command failure, stream
cancellation or agent shutdown. A non-zero exit emits a terminal marker
carrying the exit code and skips the remaining commands.

Lifecycle transitions are published on an in-process state broker for local
observers; they are not part of the wire contract.
*/
package agent
