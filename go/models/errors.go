package models

import "fmt"

type ErrorKind int

const (
	// KindConstruct means the engine could not be created for the config.
	KindConstruct ErrorKind = iota + 1
	// KindOperation means the engine was created but rejected the input.
	KindOperation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindOperation:
		return "operation"
	}
	return "unknown"
}

type Error struct {
	Kind ErrorKind
	Arch Architecture
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unsupported is the panic value for architectures with no backend mapping.
// It is never returned as an error.
type Unsupported struct {
	Arch Architecture
}

func (u Unsupported) Error() string {
	return fmt.Sprintf("architecture %s is not supported", u.Arch)
}
