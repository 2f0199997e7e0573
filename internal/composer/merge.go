package composer

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-bundle-composer/internal/validators"
	"github.com/MKhiriev/go-bundle-composer/models"
)

// Merge applies fragment onto base following [models.FieldStrategies].
// Fields the fragment does not declare keep the base value. Neither argument
// is modified and the result shares no memory with them.
func Merge(base models.BuildConfiguration, fragment models.OverrideFragment) (models.BuildConfiguration, error) {
	merged := base.Clone()
	patch := fragment.Config.Clone()

	for _, field := range models.Fields {
		if !fragment.Declares(field) {
			continue
		}

		switch field {
		case models.FieldMode:
			merged.Mode = patch.Mode
		case models.FieldEntry:
			merged.Entry = mergeEntries(merged.Entry, patch.Entry)
		case models.FieldOutput:
			output, err := mergeOutput(merged.Output, patch.Output)
			if err != nil {
				return models.BuildConfiguration{}, err
			}
			merged.Output = output
		case models.FieldRules:
			merged.Module.Rules = mergeRules(merged.Module.Rules, patch.Module.Rules)
		case models.FieldPlugins:
			merged.Plugins = append(slices.Clip(merged.Plugins), patch.Plugins...)
		case models.FieldDevtool:
			merged.Devtool = patch.Devtool
		case models.FieldDevServer:
			merged.DevServer = patch.DevServer
		}
	}

	if merged.Module.Rules == nil {
		merged.Module.Rules = []models.Rule{}
	}
	if merged.Plugins == nil {
		merged.Plugins = models.Plugins{}
	}

	return merged, nil
}

// mergeEntries adds the patch entries to base. A bundle declared on both
// sides takes the patch's module list.
func mergeEntries(base, patch models.Entries) models.Entries {
	if base == nil && patch == nil {
		return nil
	}

	out := make(models.Entries, len(base)+len(patch))
	maps.Copy(out, base)
	maps.Copy(out, patch)
	return out
}

// mergeOutput overrides every output field the patch sets.
func mergeOutput(base, patch models.Output) (models.Output, error) {
	out := base
	if err := mergo.Merge(&out, patch, mergo.WithOverride); err != nil {
		return models.Output{}, fmt.Errorf("merge output: %w", err)
	}
	return out, nil
}

// mergeRules keeps the base rules the patch does not redeclare and appends
// the patch rules in declaration order. A base rule is redeclared when a
// patch rule claims one of its file extensions, so `\.styl` and
// `\.(styl|stylus)$` both give way to a patch rule for `\.styl$`. A
// redeclared rule is replaced as a whole; loader chains are never merged
// element-wise.
func mergeRules(base, patch []models.Rule) []models.Rule {
	claimed := make([]*regexp.Regexp, 0, len(patch))
	tests := make(map[string]struct{}, len(patch))
	for _, rule := range patch {
		tests[rule.Test] = struct{}{}
		// an invalid patch pattern is reported by the validator
		if re, err := regexp.Compile(rule.Test); err == nil {
			claimed = append(claimed, re)
		}
	}

	out := make([]models.Rule, 0, len(base)+len(patch))
	for _, rule := range base {
		if !redeclared(rule.Test, tests, claimed) {
			out = append(out, rule)
		}
	}
	return append(out, patch...)
}

func redeclared(test string, tests map[string]struct{}, claimed []*regexp.Regexp) bool {
	if _, ok := tests[test]; ok {
		return true
	}

	re, err := regexp.Compile(test)
	if err != nil {
		return false
	}
	return slices.ContainsFunc(claimed, func(c *regexp.Regexp) bool {
		return validators.Overlaps(re, c)
	})
}
