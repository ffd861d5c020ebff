// Package app provides the application service layer.
//
// Orchestrates use cases: application create/delete, config get-with-default and replace,
// catalog listing, and the bind/rebind/unbind protocol for development containers.
// Sits between HTTP handlers and domain repositories. Depends on domain interfaces, not concrete implementations.
package app
