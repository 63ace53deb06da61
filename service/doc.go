// Package service orchestrates the core components of the index
// engine — keyspace, WAL, outbox, snapshotter, and memory.
//
// It provides a clean API for writing, deleting, and querying keys,
// decoupled from network transports like gRPC and Kafka.
package service
