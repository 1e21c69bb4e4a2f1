// Package graph holds utilities shared by the Library implementations:
// deep copy of a native scene graph and an ownership registry that tracks
// which release routine each live scene pointer expects.
package graph
