package errors

import (
	"fmt"
)

// StoreClosed creates a closed-binding usage error
func StoreClosed() *StoreError {
	return New(ErrCodeStoreClosed, "store binding has been closed; operations require an active binding")
}

// UnknownSlice creates an unknown slice key error
func UnknownSlice(key string) *StoreError {
	return New(ErrCodeUnknownSlice, fmt.Sprintf("slice '%s' is not declared in the store definition", key)).
		WithDetail("slice", key)
}

// DecodeFailed creates a typed slice decode error
func DecodeFailed(key string, err error) *StoreError {
	return Wrap(err, ErrCodeDecode, fmt.Sprintf("failed to decode slice '%s'", key)).
		WithDetail("slice", key)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StoreError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *StoreError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DevToolsUnavailable creates a DevTools connection error
func DevToolsUnavailable(url string, err error) *StoreError {
	return Wrap(err, ErrCodeDevTools, fmt.Sprintf("devtools endpoint unreachable: %s", url)).
		WithDetail("url", url)
}

// SnapshotFailed creates a snapshot persistence error
func SnapshotFailed(path string, err error) *StoreError {
	return Wrap(err, ErrCodeSnapshot, fmt.Sprintf("failed to persist state snapshot: %s", path)).
		WithDetail("path", path)
}
