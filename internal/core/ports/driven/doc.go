// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - PayloadDecoder: Reads a raw flight-search payload
//   - Normaliser: Resolves a payload into round-trip itineraries
//   - Presenter: Renders itineraries for a consumer
//   - Compressor: Produces the prompt-sized itinerary form
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser or presenter package
package driven
