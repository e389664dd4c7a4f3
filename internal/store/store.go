package store

import (
	"errors"
	"fmt"

	"github.com/inovacc/afscreen/internal/model"
)

// ErrRunNotFound is returned by GetRun for an unknown id.
var ErrRunNotFound = errors.New("run not found")

// Store defines the run-history operations.
type Store interface {
	Ping() error
	SaveRun(run *model.Run) error
	GetRun(id string) (*model.Run, error)

	// ListRuns returns runs newest first; limit <= 0 returns all of them.
	ListRuns(limit int) ([]model.Run, error)

	Close() error
}

// Open opens the backend named by backend ("bolt" or "sqlite") at path. The
// file name gets a backend-specific extension.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "bolt":
		return NewBolt(path + ".bolt")
	case "sqlite":
		return NewSQLite(path + ".sqlite")
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

func validateRun(run *model.Run) error {
	if run == nil {
		return errors.New("run is required")
	}

	if run.ID == "" {
		return errors.New("run id is required")
	}

	return nil
}
