// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Index: query/refine access to the search backend
//   - FileAccess: opening, revealing, and deleting files
//   - Confirmer: yes/no gating of destructive operations
//   - Notifier: user-visible success/error notifications
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
