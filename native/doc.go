// Package native mirrors the foreign importer's public ABI: the aiScene
// struct layout, the per-entity structs it points at, and the scene flag
// bits.
//
// Everything in this package is a fixed, versioned external contract. The
// flag values are pinned to the numbers the importer publishes; they must
// never be re-derived or renumbered. Count + pointer-array field pairs keep
// the foreign shape (a uint32 count and a pointer to an array of pointers)
// so the scene package can view them without copying; the count is always
// the authoritative length of the array, and the array pointer is non-nil
// whenever the count is positive.
//
// Entity struct bodies carry only the field subset the bridge reads. The
// bridge never interprets the rest of an entity; it hands the pointer to a
// wrapper and leaves the interior to the foreign side.
package native
