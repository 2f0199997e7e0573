// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// ErrUnknownPluginKind is returned when a plugin envelope names a kind that
// is not part of the closed [PluginKind] set.
var ErrUnknownPluginKind = errors.New("unknown plugin kind")

// PluginKind is the discriminator of the closed plugin variant.
type PluginKind string

const (
	// KindDefine substitutes compile-time constants.
	KindDefine PluginKind = "define"
	// KindHTMLEntry emits an HTML page referencing the emitted bundles.
	KindHTMLEntry PluginKind = "html-entry"
	// KindHotReload enables hot module replacement.
	KindHotReload PluginKind = "hot-reload"
	// KindNoEmitOnErrors suppresses output when compilation fails.
	KindNoEmitOnErrors PluginKind = "no-emit-on-errors"
	// KindStyleExtract writes extracted style rules into a standalone file.
	KindStyleExtract PluginKind = "style-extract"
	// KindBundleSplit moves shared code into its own cacheable bundle.
	KindBundleSplit PluginKind = "bundle-split"
)

// Plugin is a build-time plugin. The set of implementations is closed: only
// the types declared in this file satisfy it.
type Plugin interface {
	// Kind returns the variant discriminator.
	Kind() PluginKind

	clone() Plugin
}

// DefinePlugin replaces identifiers with literal expressions at build time.
// Values are source code, so string literals must carry their own quotes.
type DefinePlugin struct {
	Definitions map[string]string `json:"definitions"`
}

// HTMLEntryPlugin generates an HTML entry page that references the emitted
// scripts and stylesheets.
type HTMLEntryPlugin struct {
	Template string `json:"template,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// HotReloadPlugin enables hot module replacement in the development server.
type HotReloadPlugin struct{}

// NoEmitOnErrorsPlugin prevents emitting assets when compilation errors occur.
type NoEmitOnErrorsPlugin struct{}

// StyleExtractPlugin writes the output of extracting rules to Filename.
type StyleExtractPlugin struct {
	Filename string `json:"filename"`
}

// BundleSplitPlugin moves code into a separate bundle named Name.
//
// A runtime split holds the module-loader bootstrap and must not share its
// name with an entry point. Any other split extracts the modules of the entry
// point with the same name.
type BundleSplitPlugin struct {
	Name    string `json:"name"`
	Runtime bool   `json:"runtime,omitempty"`
}

func (DefinePlugin) Kind() PluginKind         { return KindDefine }
func (HTMLEntryPlugin) Kind() PluginKind      { return KindHTMLEntry }
func (HotReloadPlugin) Kind() PluginKind      { return KindHotReload }
func (NoEmitOnErrorsPlugin) Kind() PluginKind { return KindNoEmitOnErrors }
func (StyleExtractPlugin) Kind() PluginKind   { return KindStyleExtract }
func (BundleSplitPlugin) Kind() PluginKind    { return KindBundleSplit }

func (p DefinePlugin) clone() Plugin {
	return DefinePlugin{Definitions: maps.Clone(p.Definitions)}
}
func (p HTMLEntryPlugin) clone() Plugin      { return p }
func (p HotReloadPlugin) clone() Plugin      { return p }
func (p NoEmitOnErrorsPlugin) clone() Plugin { return p }
func (p StyleExtractPlugin) clone() Plugin   { return p }
func (p BundleSplitPlugin) clone() Plugin    { return p }

// NewPlugin returns the zero value of the plugin variant for kind.
func NewPlugin(kind PluginKind) (Plugin, error) {
	switch kind {
	case KindDefine:
		return &DefinePlugin{}, nil
	case KindHTMLEntry:
		return &HTMLEntryPlugin{}, nil
	case KindHotReload:
		return &HotReloadPlugin{}, nil
	case KindNoEmitOnErrors:
		return &NoEmitOnErrorsPlugin{}, nil
	case KindStyleExtract:
		return &StyleExtractPlugin{}, nil
	case KindBundleSplit:
		return &BundleSplitPlugin{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPluginKind, kind)
	}
}

// Deref converts a pointer returned by [NewPlugin] back into the value form
// stored inside [Plugins].
func Deref(p Plugin) Plugin {
	switch v := p.(type) {
	case *DefinePlugin:
		return *v
	case *HTMLEntryPlugin:
		return *v
	case *HotReloadPlugin:
		return *v
	case *NoEmitOnErrorsPlugin:
		return *v
	case *StyleExtractPlugin:
		return *v
	case *BundleSplitPlugin:
		return *v
	default:
		return p
	}
}

// Plugins is an ordered plugin sequence. Order is significant.
type Plugins []Plugin

// PluginEnvelope is the wire form of a plugin: its kind plus its options.
type PluginEnvelope struct {
	Kind    PluginKind `json:"kind"`
	Options any        `json:"options,omitempty"`
}

// Clone returns a deep copy of p.
func (p Plugins) Clone() Plugins {
	if p == nil {
		return nil
	}

	out := make(Plugins, len(p))
	for i, plugin := range p {
		out[i] = plugin.clone()
	}
	return out
}

// OfKind returns the plugins of the given kind in declaration order.
func (p Plugins) OfKind(kind PluginKind) Plugins {
	var out Plugins
	for _, plugin := range p {
		if plugin.Kind() == kind {
			out = append(out, plugin)
		}
	}
	return out
}

// Kinds returns the kind of every plugin in declaration order.
func (p Plugins) Kinds() []PluginKind {
	kinds := make([]PluginKind, 0, len(p))
	for _, plugin := range p {
		kinds = append(kinds, plugin.Kind())
	}
	return kinds
}

// Splits returns the bundle split directives in declaration order.
func (p Plugins) Splits() []BundleSplitPlugin {
	var splits []BundleSplitPlugin
	for _, plugin := range p {
		if split, ok := plugin.(BundleSplitPlugin); ok {
			splits = append(splits, split)
		}
	}
	return splits
}

// MarshalJSON encodes every plugin as a [PluginEnvelope].
func (p Plugins) MarshalJSON() ([]byte, error) {
	envelopes := make([]PluginEnvelope, 0, len(p))
	for _, plugin := range p {
		envelope := PluginEnvelope{Kind: plugin.Kind()}
		switch plugin.(type) {
		case HotReloadPlugin, NoEmitOnErrorsPlugin:
			// no options
		default:
			envelope.Options = plugin
		}
		envelopes = append(envelopes, envelope)
	}
	return json.Marshal(envelopes)
}

// UnmarshalJSON decodes a list of [PluginEnvelope] values.
func (p *Plugins) UnmarshalJSON(b []byte) error {
	var envelopes []struct {
		Kind    PluginKind      `json:"kind"`
		Options json.RawMessage `json:"options"`
	}
	if err := json.Unmarshal(b, &envelopes); err != nil {
		return err
	}

	out := make(Plugins, 0, len(envelopes))
	for i, envelope := range envelopes {
		plugin, err := NewPlugin(envelope.Kind)
		if err != nil {
			return fmt.Errorf("plugin #%d: %w", i, err)
		}
		if len(envelope.Options) > 0 && string(envelope.Options) != "null" {
			if err := json.Unmarshal(envelope.Options, plugin); err != nil {
				return fmt.Errorf("plugin #%d (%s): %w", i, envelope.Kind, err)
			}
		}
		out = append(out, Deref(plugin))
	}

	*p = out
	return nil
}
