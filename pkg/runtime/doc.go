/*
Package runtime abstracts the container engine the agent executes actions in.

The Container interface covers the three operations an action needs: start an
ephemeral container, exec commands in it while streaming their combined
output, and remove it. The Docker implementation keeps the container alive
with an interactive /bin/sh entrypoint and polls each exec instance for its
exit code; MockContainer provides the same surface for tests.

One container belongs to exactly one action. Ownership and the
remove-on-every-exit-path rule live in the action engine, not here.
*/
package runtime
