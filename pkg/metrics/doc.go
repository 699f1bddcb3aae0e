/*
Package metrics defines the Prometheus collectors shared by the SealCI
services.

Collectors are registered once at package init. Exposition is the caller's
choice: the controller serves Handler() on its admin port; the scheduler and
agent leave exposition to the deployment.
*/
package metrics
