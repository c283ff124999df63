// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never import adapters, normalisers or presenters directly;
// those are injected through the driven ports.
package services
