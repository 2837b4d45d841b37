// Package commands contains operations that modify the entity collection.
// Every command is built by a validating constructor and executed by its handler.
package commands
