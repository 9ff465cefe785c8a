// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// geometry, slide index desynchronisation, etc.) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Every structured error matches its sentinel through errors.Is, and can be
// extracted with errors.As.
package apperrors
