// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to query management controller",
//	    dialErr,
//	    map[string]interface{}{
//	        "command": "show /system1",
//	        "host": cfg.Host,
//	    },
//	)
package errors
