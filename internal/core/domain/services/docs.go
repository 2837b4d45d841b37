// Package services groups stateless domain services.
//
// Subpackages:
//   - collections: free functions that inspect and reorder collections of entities
package services
