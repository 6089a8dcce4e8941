package storage

import (
	"errors"
	"fmt"

	"companytime/internal/core/model"
)

// ErrUnknownBackend indicates an unsupported backend kind.
var ErrUnknownBackend = errors.New("unknown settings backend")

// Kind names a file-based backend implementation.
type Kind string

const (
	KindYAML   Kind = "yaml"
	KindSQLite Kind = "sqlite"
)

// Open creates a Store over a file-based backend at path.
func Open(kind Kind, path string) (*Store, error) {
	switch kind {
	case KindYAML:
		return NewStore(NewYAMLBackend(path)), nil
	case KindSQLite:
		backend, err := OpenSQLite(path, model.Namespace)
		if err != nil {
			return nil, err
		}
		return NewStore(backend), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}
