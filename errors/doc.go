// Package errors provides structured error types for the scene-bridge
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the entity kind and index involved, the
// source file being imported, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseImport, errors.KindInvalidData).
//		File("model.obj").
//		Detail("no geometry found").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(errors.PhaseCopy, "scene copy")
//	err := errors.OutOfRange(errors.PhaseAccess, "mesh", 7, 3)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
