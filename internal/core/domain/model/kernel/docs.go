// Package kernel provides the core domain primitives shared by the generic
// containers, the collection utilities and the repositories.
//
// The package includes:
//   - UUID: the stable deduplication key of an entity, ordered and binary-serializable
//   - Entity: the capability set (identity, UUID, creation time) collection utilities inspect
//   - BaseEntity: the default Entity implementation used by the repositories
//
// Primitives are validated on construction and reject zero values through Validate.
package kernel
