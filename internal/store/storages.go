package store

import (
	"io"

	"github.com/MKhiriev/go-bundle-composer/internal/logger"
)

// Storages groups the storage implementations used by the services.
type Storages struct {
	ConfigStorage ConfigStorage
}

// NewStorages wires file-backed storages writing unnamed output to out.
func NewStorages(out io.Writer, log *logger.Logger) *Storages {
	return &Storages{
		ConfigStorage: NewFileStorage(out, log),
	}
}
