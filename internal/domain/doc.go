// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (application.go, config.go, container.go, binding.go, errors.go) hold the
// shared types and the repository contracts the app layer depends on. No implementation code here.
package domain
