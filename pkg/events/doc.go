/*
Package events provides the agent's intra-process state broker.

Action execution publishes lifecycle transitions here so other local tasks
can observe them without being part of the execution path. The broker keeps
last-value semantics and never blocks the publisher; it is an implementation
convenience, not a wire contract.
*/
package events
