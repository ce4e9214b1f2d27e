package core

import "github.com/tdo-cli/tdo/pkg/models"

// TaskStore is the subset of storage.StoreManager that the Tracker needs.
// Defining it here keeps core independent of the storage package.
type TaskStore interface {
	Load() (*models.Store, error)
	Save(store *models.Store) error
}
