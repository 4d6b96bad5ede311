package registry

import "fmt"

// DuplicateKeyError reports a Register call on a key that already has a
// factory. The existing mapping is left unchanged.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("factory already registered for %s", e.Key)
}

// UnknownKeyError reports a Create call on a key with no registered factory.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s", e.Key)
}

// FactoryError wraps a failure raised by a factory while constructing a
// variant, annotating the key it was invoked for.
type FactoryError struct {
	Key string
	Err error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory for %s: %v", e.Key, e.Err)
}

func (e *FactoryError) Unwrap() error { return e.Err }
