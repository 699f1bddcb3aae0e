/*
Package controller implements the controller's scheduling side.

A submitted manifest becomes a persisted pipeline with Pending actions; the
bridge then dispatches those actions to the scheduler in ascending id order,
one stream at a time, recording every status transition and log line in the
store. Different pipelines run concurrently; actions of one pipeline never
interleave.

The HTTP admin surface in front of this package is a separate subsystem —
PipelineService is the API it consumes.
*/
package controller
