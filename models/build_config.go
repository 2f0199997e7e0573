// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// BuildConfiguration is the tree-shaped description handed to the bundler
// runtime. The same type describes the base configuration, the partial
// configuration carried by an [OverrideFragment] and the merged result.
//
// Field names follow the bundler's own configuration keys so that the JSON
// encoding can be consumed without translation.
type BuildConfiguration struct {
	// Mode is the bundler optimisation mode ("development" or "production").
	Mode string `json:"mode,omitempty"`

	// Entry maps bundle names to the source modules they are built from.
	Entry Entries `json:"entry,omitempty"`

	// Output holds the emitted file naming rules.
	Output Output `json:"output"`

	// Module holds the module-transform rules.
	Module Module `json:"module"`

	// Plugins is the ordered list of build-time plugins.
	Plugins Plugins `json:"plugins"`

	// Devtool is the source-map mode. Empty disables source maps.
	Devtool string `json:"devtool,omitempty"`

	// DevServer describes the development server. It is nil outside of
	// development builds.
	DevServer *DevServer `json:"devServer,omitempty"`
}

// Entries maps a bundle name to one or more source module paths.
// Bundle names are unique by construction.
type Entries map[string][]string

// Names returns the bundle names in sorted order.
func (e Entries) Names() []string {
	return slices.Sorted(maps.Keys(e))
}

// Has reports whether a bundle with the given name exists.
func (e Entries) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Output describes how emitted files are named and where they are written.
type Output struct {
	// Path is the output directory.
	Path string `json:"path,omitempty"`

	// PublicPath is the URL prefix the emitted assets are served from.
	PublicPath string `json:"publicPath,omitempty"`

	// Filename is the script filename pattern, e.g. "[name].[chunkhash:8].js".
	Filename string `json:"filename,omitempty"`
}

// Module groups module-transform rules.
type Module struct {
	Rules []Rule `json:"rules"`
}

// StylePattern is the rule pattern of the stylesheet pipeline.
const StylePattern = `\.styl$`

// Rule maps a file pattern to an ordered chain of loaders.
// Rules are identified by the file extensions their Test pattern claims.
type Rule struct {
	// Test is a regular expression matched against module file names.
	Test string `json:"test"`

	// Use is the loader chain, applied by the bundler from last to first.
	Use []Loader `json:"use"`

	// Extract, when set, emits the rule's output into a standalone file
	// instead of injecting it at runtime.
	Extract *StyleExtract `json:"extract,omitempty"`
}

// StyleExtract marks a style rule as extracted into a standalone file.
type StyleExtract struct {
	// Fallback is the loader used for chunks the extractor cannot handle.
	Fallback string `json:"fallback"`
}

// Loader is a single step of a rule's loader chain.
type Loader struct {
	Loader  string         `json:"loader"`
	Options map[string]any `json:"options,omitempty"`
}

// MarshalJSON encodes loaders without options in the short string form.
func (l Loader) MarshalJSON() ([]byte, error) {
	if len(l.Options) == 0 {
		return json.Marshal(l.Loader)
	}

	type rawLoader Loader
	return json.Marshal(rawLoader(l))
}

// UnmarshalJSON accepts both the short string form and the object form.
func (l *Loader) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*l = Loader{Loader: name}
		return nil
	}

	type rawLoader Loader
	var raw rawLoader
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*l = Loader(raw)
	return nil
}

// DevServer describes the development server the bundler runtime starts.
type DevServer struct {
	// Host is the bind address. "0.0.0.0" binds all interfaces.
	Host string `json:"host"`

	// Port is the TCP port the server listens on.
	Port int `json:"port"`

	// Hot enables hot module replacement.
	Hot bool `json:"hot"`

	// Overlay controls the in-browser compile error overlay.
	Overlay Overlay `json:"overlay"`

	// Open launches a browser once the first compilation finishes.
	Open bool `json:"open"`
}

// Overlay configures the compile-error overlay of the development server.
type Overlay struct {
	Errors bool `json:"errors"`
}

// Clone returns a deep copy of c. Mutating the copy never affects c.
func (c BuildConfiguration) Clone() BuildConfiguration {
	out := c

	if c.Entry != nil {
		out.Entry = make(Entries, len(c.Entry))
		for name, modules := range c.Entry {
			out.Entry[name] = slices.Clone(modules)
		}
	}

	if c.Module.Rules != nil {
		out.Module.Rules = make([]Rule, len(c.Module.Rules))
		for i, rule := range c.Module.Rules {
			out.Module.Rules[i] = rule.Clone()
		}
	}

	out.Plugins = c.Plugins.Clone()

	if c.DevServer != nil {
		devServer := *c.DevServer
		out.DevServer = &devServer
	}

	return out
}

// Clone returns a deep copy of r.
func (r Rule) Clone() Rule {
	out := r

	if r.Use != nil {
		out.Use = make([]Loader, len(r.Use))
		for i, loader := range r.Use {
			out.Use[i] = loader.Clone()
		}
	}

	if r.Extract != nil {
		extract := *r.Extract
		out.Extract = &extract
	}

	return out
}

// Clone returns a deep copy of l.
func (l Loader) Clone() Loader {
	return Loader{Loader: l.Loader, Options: cloneOptions(l.Options)}
}

// LoaderNames returns the loader chain as plain names.
func (r Rule) LoaderNames() []string {
	names := make([]string, 0, len(r.Use))
	for _, loader := range r.Use {
		names = append(names, loader.Loader)
	}
	return names
}

func cloneOptions(options map[string]any) map[string]any {
	if options == nil {
		return nil
	}

	out := make(map[string]any, len(options))
	for key, value := range options {
		switch v := value.(type) {
		case map[string]any:
			out[key] = cloneOptions(v)
		case []any:
			out[key] = slices.Clone(v)
		default:
			out[key] = v
		}
	}
	return out
}

// DefaultBase returns the built-in, environment-independent base
// configuration used when no base file is supplied.
func DefaultBase() BuildConfiguration {
	return BuildConfiguration{
		Entry: Entries{
			"app": {"./src/index.js"},
		},
		Output: Output{
			Path:       "dist",
			PublicPath: "/public/",
			Filename:   "bundle.[hash:8].js",
		},
		Module: Module{
			Rules: []Rule{
				{
					Test: `\.vue$`,
					Use:  []Loader{{Loader: "vue-loader"}},
				},
				{
					Test: `\.jsx$`,
					Use:  []Loader{{Loader: "babel-loader"}},
				},
				{
					Test: `\.(gif|jpg|jpeg|png|svg)$`,
					Use: []Loader{{
						Loader: "url-loader",
						Options: map[string]any{
							"limit": 1024,
							"name":  "resources/[path][name].[hash:8].[ext]",
						},
					}},
				},
			},
		},
		Plugins: Plugins{},
	}
}
