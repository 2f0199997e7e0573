// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bundle-composer/internal/logger"
	"github.com/MKhiriev/go-bundle-composer/models"
)

// ── fixtures ─────────────────────────────────────────────────────────────────

const jsonBase = `{
  "entry": {"app": "./src/main.js", "admin": ["./src/admin.js"]},
  "output": {"path": "build", "publicPath": "/static/", "filename": "bundle.js"},
  "module": {"rules": [
    {"test": "\\.vue$", "use": ["vue-loader"]},
    {"test": "\\.(png|svg)$", "use": [{"loader": "url-loader", "options": {"limit": 2048}}]}
  ]},
  "plugins": [
    {"kind": "html-entry", "options": {"template": "index.html"}},
    {"kind": "no-emit-on-errors"}
  ],
  "devtool": "source-map"
}`

const yamlBase = `
entry:
  app: ./src/main.js
  admin:
    - ./src/admin.js
output:
  path: build
  publicPath: /static/
  filename: bundle.js
module:
  rules:
    - test: '\.vue$'
      use: [vue-loader]
    - test: '\.(png|svg)$'
      use:
        - loader: url-loader
          options:
            limit: 2048
plugins:
  - kind: html-entry
    options:
      template: index.html
  - kind: no-emit-on-errors
devtool: source-map
`

const tomlBase = `
devtool = "source-map"

[entry]
app = "./src/main.js"
admin = ["./src/admin.js"]

[output]
path = "build"
publicPath = "/static/"
filename = "bundle.js"

[[module.rules]]
test = '\.vue$'
use = ["vue-loader"]

[[module.rules]]
test = '\.(png|svg)$'
[[module.rules.use]]
loader = "url-loader"
[module.rules.use.options]
limit = 2048

[[plugins]]
kind = "html-entry"
[plugins.options]
template = "index.html"

[[plugins]]
kind = "no-emit-on-errors"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newTestStorage(out *bytes.Buffer) ConfigStorage {
	return NewFileStorage(out, logger.Nop())
}

// ── LoadBase ─────────────────────────────────────────────────────────────────

func TestLoadBase_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "base.json", content: jsonBase},
		{name: "yaml", file: "base.yaml", content: yamlBase},
		{name: "yml", file: "base.yml", content: yamlBase},
		{name: "toml", file: "base.toml", content: tomlBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStorage(&bytes.Buffer{})

			cfg, err := s.LoadBase(context.Background(), writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, models.Entries{
				"app":   {"./src/main.js"},
				"admin": {"./src/admin.js"},
			}, cfg.Entry)
			assert.Equal(t, models.Output{Path: "build", PublicPath: "/static/", Filename: "bundle.js"}, cfg.Output)
			assert.Equal(t, "source-map", cfg.Devtool)
			assert.Nil(t, cfg.DevServer)

			require.Len(t, cfg.Module.Rules, 2)
			assert.Equal(t, `\.vue$`, cfg.Module.Rules[0].Test)
			assert.Equal(t, []models.Loader{{Loader: "vue-loader"}}, cfg.Module.Rules[0].Use)
			assert.Equal(t, "url-loader", cfg.Module.Rules[1].Use[0].Loader)
			assert.EqualValues(t, 2048, cfg.Module.Rules[1].Use[0].Options["limit"])

			assert.Equal(t, models.Plugins{
				models.HTMLEntryPlugin{Template: "index.html"},
				models.NoEmitOnErrorsPlugin{},
			}, cfg.Plugins)
		})
	}
}

func TestLoadBase_EmptyPathUsesDefault(t *testing.T) {
	s := newTestStorage(&bytes.Buffer{})

	cfg, err := s.LoadBase(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBase(), cfg)
}

func TestLoadBase_Errors(t *testing.T) {
	s := newTestStorage(&bytes.Buffer{})
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := s.LoadBase(ctx, filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, ErrBaseNotFound)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := s.LoadBase(ctx, writeFile(t, "base.ini", "a=b"))
		assert.ErrorIs(t, err, ErrUnsupportedBaseFormat)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := s.LoadBase(ctx, writeFile(t, "base.json", "{"))
		assert.ErrorIs(t, err, ErrParsingBase)
	})

	t.Run("unknown plugin kind", func(t *testing.T) {
		_, err := s.LoadBase(ctx, writeFile(t, "base.json", `{"plugins":[{"kind":"uglify"}]}`))
		assert.ErrorIs(t, err, ErrParsingBase)
		assert.ErrorIs(t, err, models.ErrUnknownPluginKind)
	})

	t.Run("unknown top-level key", func(t *testing.T) {
		_, err := s.LoadBase(ctx, writeFile(t, "base.json", `{"resolve":{"alias":{}}}`))
		assert.ErrorIs(t, err, ErrParsingBase)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.LoadBase(cancelled, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// ── SaveComposed ─────────────────────────────────────────────────────────────

func composed(t *testing.T) models.ComposedConfiguration {
	t.Helper()
	cc, err := models.NewComposedConfiguration(models.Production, models.DefaultBase())
	require.NoError(t, err)
	return cc
}

func TestSaveComposed_StdoutJSON(t *testing.T) {
	var out bytes.Buffer
	s := newTestStorage(&out)

	require.NoError(t, s.SaveComposed(context.Background(), "", models.FormatJSON, composed(t)))

	var decoded models.BuildConfiguration
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "dist", decoded.Output.Path)
}

func TestSaveComposed_FileYAML(t *testing.T) {
	s := newTestStorage(&bytes.Buffer{})
	path := filepath.Join(t.TempDir(), "out", "webpack.yaml")

	require.NoError(t, s.SaveComposed(context.Background(), path, models.FormatYAML, composed(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, yaml.Unmarshal(data, &tree))
	assert.Contains(t, tree, "output")
	assert.Contains(t, tree, "module")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestSaveComposed_RoundTripThroughLoadBase(t *testing.T) {
	s := newTestStorage(&bytes.Buffer{})
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "composed.json")

	original := composed(t)
	require.NoError(t, s.SaveComposed(ctx, path, models.FormatJSON, original))

	loaded, err := s.LoadBase(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, original.Config().Entry, loaded.Entry)
	assert.Equal(t, original.Config().Output, loaded.Output)
	assert.Len(t, loaded.Module.Rules, len(original.Config().Module.Rules))
}

func TestSaveComposed_Errors(t *testing.T) {
	s := newTestStorage(&bytes.Buffer{})
	ctx := context.Background()

	err := s.SaveComposed(ctx, "", models.FormatJSON, models.ComposedConfiguration{})
	assert.ErrorIs(t, err, ErrEmptyComposed)

	err = s.SaveComposed(ctx, "", models.OutputFormat("xml"), composed(t))
	assert.ErrorIs(t, err, models.ErrUnsupportedFormat)
}
