package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/inovacc/afscreen/internal/encoding"
	"github.com/inovacc/afscreen/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltBucketRuns = "runs" // key: created_at + id -> Run JSON
	boltBucketIDs  = "ids"  // key: id -> runs key
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates or opens a Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	if err := encoding.EnsureParentDir(path); err != nil {
		return nil, err
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRuns)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketIDs)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// runKey sorts lexically in creation order.
func runKey(run *model.Run) []byte {
	return fmt.Appendf(nil, "%020d-%s", run.CreatedAt.UnixNano(), run.ID)
}

func (b *Bolt) SaveRun(run *model.Run) error {
	if err := validateRun(run); err != nil {
		return err
	}

	data, err := json.Marshal(run)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		var (
			runs = tx.Bucket([]byte(boltBucketRuns))
			ids  = tx.Bucket([]byte(boltBucketIDs))
		)

		if old := ids.Get([]byte(run.ID)); old != nil {
			if err := runs.Delete(old); err != nil {
				return err
			}
		}

		key := runKey(run)

		if err := runs.Put(key, data); err != nil {
			return err
		}

		return ids.Put([]byte(run.ID), key)
	})
}

func (b *Bolt) GetRun(id string) (*model.Run, error) {
	var run *model.Run

	err := b.storage.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket([]byte(boltBucketIDs)).Get([]byte(id))
		if key == nil {
			return ErrRunNotFound
		}

		data := tx.Bucket([]byte(boltBucketRuns)).Get(key)
		if data == nil {
			return ErrRunNotFound
		}

		decoded, err := encoding.ParseJSON[model.Run](data)
		if err != nil {
			return err
		}

		run = decoded

		return nil
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (b *Bolt) ListRuns(limit int) ([]model.Run, error) {
	var runs []model.Run

	err := b.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(boltBucketRuns)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}

			run, err := encoding.ParseJSON[model.Run](v)
			if err != nil {
				return err
			}

			runs = append(runs, *run)
		}

		return nil
	})

	return runs, err
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}
