// Package app provides the application service layer.
//
// Orchestrates use cases: catalog reads and bulk reorders, workspace
// provisioning, workspace-scoped bulk updates, and initialization sync.
// Sits between HTTP handlers and domain repositories. Depends on domain
// interfaces, not concrete implementations.
package app
