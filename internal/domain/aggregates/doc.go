// Package aggregates defines domain-facing aggregate contracts and the error
// taxonomy shared by the store, the aggregates and the services.
//
// These contracts avoid persistence/transport details and mark the write
// boundaries where invariants must hold atomically.
package aggregates
