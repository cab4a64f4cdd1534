// Package repository holds the persistence adapters. The store treats them
// as an opaque namespaced key-value slot: load the whole collection, save
// the whole collection, last write wins.
package repository

import (
	"context"

	"resume-builder/internal/model"
)

// RawCollection is the collection as loaded from disk, records still in
// whatever historical shape they were saved in. Migration happens above
// this layer, so adapters must not decode records into typed structs.
type RawCollection struct {
	Resumes []map[string]interface{} `json:"resumes"`
	LastID  int                      `json:"lastId"`
}

// Storage is the persistence adapter contract. Load returns an empty
// collection for a missing slot; other failures surface as errors and are
// absorbed (degraded to empty) by the caller.
type Storage interface {
	Load(ctx context.Context) (RawCollection, error)
	Save(ctx context.Context, c model.Collection) error
}
