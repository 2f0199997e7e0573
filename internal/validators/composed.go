package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-bundle-composer/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldEntry targets the entry point map.
	FieldEntry = "entry"

	// FieldRules targets the module-transform rules.
	FieldRules = "rules"

	// FieldPlugins targets plugin cardinality, per-profile required and
	// forbidden plugins and bundle split directives.
	FieldPlugins = "plugins"

	// FieldOutput targets script and style filename patterns.
	FieldOutput = "output"

	// FieldDevServer targets the development server descriptor.
	FieldDevServer = "devServer"

	// FieldDevtool targets the source-map mode.
	FieldDevtool = "devtool"
)

// DefaultFields is the field set validated when none is given.
var DefaultFields = []string{FieldEntry, FieldRules, FieldPlugins, FieldOutput, FieldDevServer, FieldDevtool}

const (
	styleInjectionLoader = "style-loader"
	maxPort              = 65535
)

// hashPlaceholders are the filename tokens that embed a digest. Only the
// content-derived ones satisfy production: [hash] changes on every build.
var (
	hashPlaceholders        = []string{"[hash", "[chunkhash", "[contenthash"}
	contentHashPlaceholders = []string{"[chunkhash", "[contenthash"}
)

// singleInstanceKinds may appear at most once in a plugin list.
var singleInstanceKinds = []models.PluginKind{
	models.KindDefine,
	models.KindHotReload,
	models.KindNoEmitOnErrors,
	models.KindStyleExtract,
}

// stylePipeline selects the rules the production injection check applies to.
// Base rules for other stylesheets keep whatever loader chain they declare.
var stylePipeline = regexp.MustCompile(models.StylePattern)

// ComposedValidator validates a [models.ComposedConfiguration] against the
// shape its profile requires.
type ComposedValidator struct {
}

// NewComposedValidator constructs a new ComposedValidator
// and returns it as the Validator interface.
func NewComposedValidator() Validator {
	return &ComposedValidator{}
}

// Validate accepts models.ComposedConfiguration and its pointer form.
// Returns ErrUnsupportedType for anything else.
func (v *ComposedValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ComposedConfiguration:
		return v.validateComposed(ctx, value, fields...)
	case *models.ComposedConfiguration:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateComposed(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ComposedValidator) validateComposed(ctx context.Context, cc models.ComposedConfiguration, fields ...string) error {
	profile := cc.Profile()
	if !profile.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidEnvironmentProfile, profile)
	}

	if len(fields) == 0 {
		fields = DefaultFields
	}

	cfg := cc.Config()
	for _, f := range fields {
		var err error
		switch f {
		case FieldEntry:
			err = validateEntry(cfg.Entry)
		case FieldRules:
			err = validateRules(profile, cfg.Module.Rules)
		case FieldPlugins:
			err = validatePlugins(profile, cfg)
		case FieldOutput:
			err = validateOutput(profile, cfg)
		case FieldDevServer:
			err = validateDevServer(profile, cfg.DevServer)
		case FieldDevtool:
			err = validateDevtool(profile, cfg.Devtool)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func validateEntry(entry models.Entries) error {
	if len(entry) == 0 {
		return ErrEmptyEntry
	}
	for _, name := range entry.Names() {
		if len(entry[name]) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyEntryModules, name)
		}
	}
	return nil
}

// validateRules checks that patterns compile, are unique and that no two
// rules claim the same file extension (see [Overlap]).
func validateRules(profile models.Profile, rules []models.Rule) error {
	compiled := make([]*regexp.Regexp, len(rules))
	seen := make(map[string]int, len(rules))

	for i, rule := range rules {
		if prev, ok := seen[rule.Test]; ok {
			return fmt.Errorf("%w: %q (rules #%d and #%d)", ErrDuplicateRule, rule.Test, prev, i)
		}
		seen[rule.Test] = i

		re, err := regexp.Compile(rule.Test)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidRulePattern, rule.Test, err)
		}
		compiled[i] = re

		if len(rule.Use) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyLoaderChain, rule.Test)
		}

		switch profile {
		case models.Development:
			if rule.Extract != nil {
				return fmt.Errorf("%w: %q", ErrExtractedStyles, rule.Test)
			}
		case models.Production:
			if rule.Extract == nil && rule.Use[0].Loader == styleInjectionLoader && Overlaps(re, stylePipeline) {
				return fmt.Errorf("%w: %q", ErrInjectedStyles, rule.Test)
			}
		}
	}

	for i := range rules {
		for j := i + 1; j < len(rules); j++ {
			if name, ok := Overlap(compiled[i], compiled[j]); ok {
				return fmt.Errorf("%w: %q matched by %q and %q", ErrOverlappingRules, name, rules[i].Test, rules[j].Test)
			}
		}
	}

	return nil
}

func validatePlugins(profile models.Profile, cfg models.BuildConfiguration) error {
	plugins := cfg.Plugins

	for _, kind := range singleInstanceKinds {
		if n := len(plugins.OfKind(kind)); n > 1 {
			return fmt.Errorf("%w: %s declared %d times", ErrDuplicatePlugin, kind, n)
		}
	}

	splits := plugins.Splits()
	names := make(map[string]struct{}, len(splits))
	for _, split := range splits {
		if split.Name == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidBundleSplit)
		}
		if _, ok := names[split.Name]; ok {
			return fmt.Errorf("%w: %q declared twice", ErrInvalidBundleSplit, split.Name)
		}
		names[split.Name] = struct{}{}

		if split.Runtime && cfg.Entry.Has(split.Name) {
			return fmt.Errorf("%w: %q", ErrRuntimeSplitIsEntry, split.Name)
		}
		if !split.Runtime && !cfg.Entry.Has(split.Name) {
			return fmt.Errorf("%w: %q does not name an entry point", ErrInvalidBundleSplit, split.Name)
		}
	}

	switch profile {
	case models.Development:
		if err := requireKinds(plugins, models.KindHotReload, models.KindNoEmitOnErrors); err != nil {
			return err
		}
		return forbidKinds(profile, plugins, models.KindStyleExtract, models.KindBundleSplit)

	case models.Production:
		if err := requireKinds(plugins, models.KindStyleExtract); err != nil {
			return err
		}
		if err := forbidKinds(profile, plugins, models.KindHotReload); err != nil {
			return err
		}
		return validateProductionSplits(splits)
	}

	return nil
}

// validateProductionSplits requires exactly one vendor-style split and one
// runtime split.
func validateProductionSplits(splits []models.BundleSplitPlugin) error {
	if len(splits) != 2 {
		return fmt.Errorf("%w: want 2 splits, got %d", ErrInvalidBundleSplit, len(splits))
	}

	var runtime int
	for _, split := range splits {
		if split.Runtime {
			runtime++
		}
	}
	if runtime != 1 {
		return fmt.Errorf("%w: want exactly one runtime split, got %d", ErrInvalidBundleSplit, runtime)
	}

	return nil
}

func requireKinds(plugins models.Plugins, kinds ...models.PluginKind) error {
	for _, kind := range kinds {
		if len(plugins.OfKind(kind)) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingPlugin, kind)
		}
	}
	return nil
}

func forbidKinds(profile models.Profile, plugins models.Plugins, kinds ...models.PluginKind) error {
	for _, kind := range kinds {
		if len(plugins.OfKind(kind)) > 0 {
			return fmt.Errorf("%w: %s in %s", ErrForbiddenPlugin, kind, profile)
		}
	}
	return nil
}

func validateOutput(profile models.Profile, cfg models.BuildConfiguration) error {
	patterns := []string{cfg.Output.Filename}
	for _, plugin := range cfg.Plugins.OfKind(models.KindStyleExtract) {
		patterns = append(patterns, plugin.(models.StyleExtractPlugin).Filename)
	}

	for _, pattern := range patterns {
		switch {
		case profile == models.Development && containsAny(pattern, hashPlaceholders):
			return fmt.Errorf("%w: %q", ErrHashedFilename, pattern)
		case profile == models.Production && !containsAny(pattern, contentHashPlaceholders):
			return fmt.Errorf("%w: %q", ErrUnhashedFilename, pattern)
		}
	}

	return nil
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func validateDevServer(profile models.Profile, ds *models.DevServer) error {
	switch profile {
	case models.Development:
		if ds == nil {
			return ErrMissingDevServer
		}
		if ds.Host == "" {
			return fmt.Errorf("%w: empty host", ErrInvalidDevServer)
		}
		if ds.Port <= 0 || ds.Port > maxPort {
			return fmt.Errorf("%w: port %d out of range", ErrInvalidDevServer, ds.Port)
		}
	case models.Production:
		if ds != nil {
			return ErrUnexpectedDevServer
		}
	}
	return nil
}

func validateDevtool(profile models.Profile, devtool string) error {
	if profile != models.Development {
		return nil
	}
	if !strings.Contains(devtool, "eval") && !strings.Contains(devtool, "inline") {
		return fmt.Errorf("%w: %q is not an inline or eval source map", ErrInvalidDevtool, devtool)
	}
	return nil
}
