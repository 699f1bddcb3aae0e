/*
Package pool maintains the scheduler's live collection of registered agents
ranked by load.

The pool is a slice kept sorted ascending by (score, id). Registration
assigns one more than the highest id in the pool and re-sorts; health updates re-sort
only when the updated agent fell out of order relative to its neighbors.
Dispatchers peek at the head under the pool mutex, copy the endpoint out and
release the lock before dialing.

Scores come from the agent's health telemetry: lower is freer. There is no
liveness timeout in this core — agents that stop reporting simply keep their
last score until the scheduler restarts.
*/
package pool
