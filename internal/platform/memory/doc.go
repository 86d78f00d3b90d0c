// Package memory provides an in-memory implementation of the store
// interfaces. The store lives for the lifetime of the process and is
// discarded on exit; nothing is persisted.
package memory
