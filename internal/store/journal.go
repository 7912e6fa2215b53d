// Package store keeps the release journal: one record per release attempt,
// persisted in a bbolt file under the application directory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	bucketReleases = "releases" // key: order key -> Record JSON
	bucketIndex    = "index"    // key: ID -> order key
)

// ErrNotFound is returned when no record matches the requested ID
var ErrNotFound = errors.New("release record not found")

// Status of a release attempt
type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusPlanned   Status = "planned"
)

// Record is one release attempt
type Record struct {
	ID              string    `json:"id"`
	Version         string    `json:"version"`
	PreviousVersion string    `json:"previous_version"`
	Tag             string    `json:"tag"`
	Remotes         []string  `json:"remotes,omitempty"`
	Published       []string  `json:"published,omitempty"`
	DryRun          bool      `json:"dry_run"`
	Status          Status    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at,omitzero"`
	Error           string    `json:"error,omitempty"`
}

// Duration is zero while the record is still running
func (r Record) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}

	return r.FinishedAt.Sub(r.StartedAt)
}

// Finish marks the record done with the outcome of err
func (r *Record) Finish(err error) {
	r.FinishedAt = time.Now().UTC()

	switch {
	case err != nil:
		r.Status = StatusFailed
		r.Error = err.Error()
	case r.DryRun:
		r.Status = StatusPlanned
	default:
		r.Status = StatusSucceeded
	}
}

// Journal is a bbolt backed record store
type Journal struct {
	storage *bbolt.DB
}

// Open opens or creates the journal at path
func Open(path string) (*Journal, error) {
	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketReleases)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(bucketIndex)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Journal{storage: instance}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.storage.Close()
}

// orderKey sorts records by start time, ties broken by ID
func orderKey(rec *Record) []byte {
	return []byte(rec.StartedAt.UTC().Format("20060102T150405.000000000Z") + "/" + rec.ID)
}

// Save inserts or updates rec. A missing ID or start time is filled in.
func (j *Journal) Save(rec *Record) error {
	if rec == nil {
		return errors.New("record is required")
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}

	if rec.Status == "" {
		rec.Status = StatusRunning
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return j.storage.Update(func(tx *bbolt.Tx) error {
		releases := tx.Bucket([]byte(bucketReleases))
		index := tx.Bucket([]byte(bucketIndex))

		if old := index.Get([]byte(rec.ID)); old != nil {
			if err := releases.Delete(old); err != nil {
				return err
			}
		}

		key := orderKey(rec)

		if err := releases.Put(key, data); err != nil {
			return err
		}

		return index.Put([]byte(rec.ID), key)
	})
}

// Get returns the record with the given ID
func (j *Journal) Get(id string) (*Record, error) {
	var rec *Record

	err := j.storage.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket([]byte(bucketIndex)).Get([]byte(id))
		if key == nil {
			return ErrNotFound
		}

		v := tx.Bucket([]byte(bucketReleases)).Get(key)
		if v == nil {
			return ErrNotFound
		}

		var r Record
		if err := json.Unmarshal(v, &r); err != nil {
			return err
		}

		rec = &r

		return nil
	})

	return rec, err
}

// List returns up to limit records, newest first. limit <= 0 returns all.
func (j *Journal) List(limit int) ([]Record, error) {
	var records []Record

	err := j.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketReleases)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}

			var r Record
			if err := json.Unmarshal(v, &r); err != nil {
				return err
			}

			records = append(records, r)
		}

		return nil
	})

	return records, err
}

// Latest returns the newest record, or ErrNotFound on an empty journal
func (j *Journal) Latest() (*Record, error) {
	records, err := j.List(1)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return &records[0], nil
}
