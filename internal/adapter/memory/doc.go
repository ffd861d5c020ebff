// Package memory provides process-lifetime implementations of the domain repositories.
//
// Each store guards its state with its own lock, so every mutating call is serialized
// per entity group. Nothing survives a restart.
package memory
