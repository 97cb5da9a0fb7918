// Package repository handles all interactions with the data store.
//
// The store is process memory: two ordered collections (users and
// activities) guarded by mutexes. Nothing is persisted; a restart starts
// from empty collections with ids counting from 1 again.
package repository
