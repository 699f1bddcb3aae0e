/*
Package scheduler implements the SealCI scheduling service.

The scheduler serves two gRPC surfaces over one agent pool: agents call
RegisterAgent once and then stream change-triggered health samples into
ReportHealthStatus; the controller calls ScheduleAction, which peeks the
least-loaded agent, opens its ExecutionAction stream and relays every
response back unchanged.

Dispatch is deliberately dumb: no retry, no resubmission to another agent,
and the selected agent is not held out of the pool — admission control lives
on the agent itself. The pool only learns about new load through the agent's
next health report.
*/
package scheduler
