/*
Package store is the controller's persistence boundary.

Pipelines, actions, commands and logs live in four relational tables (see
migrations/). The PostgresStore implementation talks to them through pgx;
MemoryStore mirrors the same semantics for tests. Everything above this
package depends only on the Store interface.
*/
package store
