/*
Package client provides gRPC channel establishment for SealCI peers.

Dial implements the connection policy every service uses to reach an
upstream: exponential backoff from 2s doubling to a 64s cap, ten attempts,
then fatal. Client wraps the controller's single long-lived channel to the
scheduler; stream opening is serialized, stream consumption is the caller's.
*/
package client
