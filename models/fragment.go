// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Field names a top-level [BuildConfiguration] field for merge purposes.
type Field string

const (
	FieldMode      Field = "mode"
	FieldEntry     Field = "entry"
	FieldOutput    Field = "output"
	FieldRules     Field = "module.rules"
	FieldPlugins   Field = "plugins"
	FieldDevtool   Field = "devtool"
	FieldDevServer Field = "devServer"
)

// Fields lists every mergeable field in the order merges are applied.
var Fields = []Field{
	FieldMode,
	FieldEntry,
	FieldOutput,
	FieldRules,
	FieldPlugins,
	FieldDevtool,
	FieldDevServer,
}

// Strategy declares how a fragment's value for a field combines with the
// base value.
type Strategy int

const (
	// StrategyReplace discards the base value in favour of the fragment's.
	// For record fields (output) every field the fragment sets replaces the
	// corresponding base field.
	StrategyReplace Strategy = iota + 1

	// StrategyAppend keeps the base elements and appends the fragment's in
	// declaration order. Keyed elements (entries by name, rules by pattern)
	// declared by both sides are replaced wholesale by the fragment's element.
	StrategyAppend
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyReplace:
		return "replace"
	case StrategyAppend:
		return "append"
	default:
		return "unknown"
	}
}

// FieldStrategies is the merge schema. Every field in [Fields] has exactly
// one entry; adding a field to BuildConfiguration requires declaring it here.
var FieldStrategies = map[Field]Strategy{
	FieldMode:      StrategyReplace,
	FieldEntry:     StrategyAppend,
	FieldOutput:    StrategyReplace,
	FieldRules:     StrategyAppend,
	FieldPlugins:   StrategyAppend,
	FieldDevtool:   StrategyReplace,
	FieldDevServer: StrategyReplace,
}

// OverrideFragment is the environment-specific partial configuration merged
// onto the base. Only declared fields take part in the merge, which lets a
// fragment explicitly set a zero value (for example clearing DevServer).
type OverrideFragment struct {
	Profile  Profile
	Config   BuildConfiguration
	Declared []Field
}

// Declares reports whether the fragment sets field.
func (f OverrideFragment) Declares(field Field) bool {
	return slices.Contains(f.Declared, field)
}
