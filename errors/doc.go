// Package errors provides structured error types for the carla-data-serde library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, sensor kind, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindRaggedGrid).
//		Path("array").
//		Sensor("image").
//		Detail("row 4 has length 2, want 3").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownVariant(errors.PhaseDecode, path, 11, 10)
//	err := errors.RaggedGrid(errors.PhaseDecode, path, 4, 2, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
