// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/models"
)

// fileStorage is the filesystem implementation of [ConfigStorage].
type fileStorage struct {
	out    io.Writer
	logger *logger.Logger
}

// NewFileStorage constructs a [ConfigStorage] that reads and writes local
// files. Saves with an empty path are written to out.
func NewFileStorage(out io.Writer, log *logger.Logger) ConfigStorage {
	return &fileStorage{out: out, logger: log}
}

// LoadBase reads and decodes the base configuration at path. The format is
// selected by the file extension.
func (s *fileStorage) LoadBase(ctx context.Context, path string) (models.BuildConfiguration, error) {
	if err := ctx.Err(); err != nil {
		return models.BuildConfiguration{}, err
	}

	if path == "" {
		s.logger.Debug().Msg("no base file given, using built-in base configuration")
		return models.DefaultBase(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.BuildConfiguration{}, fmt.Errorf("%w: %s", ErrBaseNotFound, path)
	}
	if err != nil {
		return models.BuildConfiguration{}, fmt.Errorf("failed to read base configuration '%s': %w", path, err)
	}

	doc, err := parseDocument(path, data)
	if err != nil {
		return models.BuildConfiguration{}, err
	}

	cfg, err := decodeBuildConfiguration(doc)
	if err != nil {
		return models.BuildConfiguration{}, fmt.Errorf("%w '%s': %w", ErrParsingBase, path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Strs("entries", cfg.Entry.Names()).
		Int("rules", len(cfg.Module.Rules)).
		Int("plugins", len(cfg.Plugins)).
		Msg("base configuration loaded")

	return cfg, nil
}

func parseDocument(path string, data []byte) (map[string]any, error) {
	doc := make(map[string]any)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: JSON '%s': %w", ErrParsingBase, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: YAML '%s': %w", ErrParsingBase, path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: TOML '%s': %w", ErrParsingBase, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBaseFormat, ext)
	}

	return doc, nil
}

// SaveComposed encodes cc and writes it to path atomically, or to the output
// stream when path is empty.
func (s *fileStorage) SaveComposed(ctx context.Context, path string, format models.OutputFormat, cc models.ComposedConfiguration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cc.IsZero() {
		return ErrEmptyComposed
	}

	data, err := Encode(format, cc)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = s.out.Write(data)
		return err
	}

	if err = writeFileAtomic(path, data); err != nil {
		return err
	}

	s.logger.Info().
		Str("path", path).
		Str("format", string(format)).
		Str("profile", cc.Profile().String()).
		Str("fingerprint", cc.Fingerprint()).
		Msg("composed configuration written")

	return nil
}

// Encode renders cc in the given output format.
func Encode(format models.OutputFormat, cc models.ComposedConfiguration) ([]byte, error) {
	data, err := json.MarshalIndent(cc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode composed configuration: %w", err)
	}

	switch format {
	case models.FormatJSON, "":
		return append(data, '\n'), nil
	case models.FormatYAML:
		// round-trip through a generic tree so YAML keys follow the JSON ones
		var tree any
		if err = json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to encode composed configuration: %w", err)
		}

		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err = encoder.Encode(tree); err != nil {
			return nil, fmt.Errorf("failed to encode composed configuration as YAML: %w", err)
		}
		if err = encoder.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode composed configuration as YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFormat, format)
	}
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in '%s': %w", dir, err)
	}

	tempPath := tempFile.Name()
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tempPath)
		}
	}()

	if _, err = tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file '%s': %w", tempPath, err)
	}
	if err = tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file '%s': %w", tempPath, err)
	}
	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file '%s': %w", tempPath, err)
	}
	if err = os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", tempPath, err)
	}
	if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename '%s' to '%s': %w", tempPath, path, err)
	}
	renamed = true

	return nil
}
