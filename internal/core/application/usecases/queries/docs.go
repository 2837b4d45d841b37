// Package queries contains read operations over the entity collection.
// Each query is built by a constructor and answered by its handler using the
// repository snapshot and the collection utilities.
package queries
