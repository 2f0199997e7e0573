package composer

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-bundle-composer/models"
)

const (
	// StylePattern is the rule pattern of the stylesheet pipeline.
	StylePattern = models.StylePattern

	// DevelopmentDevtool is an eval-based source map with module-level
	// mappings, rebuilt cheaply on every change.
	DevelopmentDevtool = "cheap-module-eval-source-map"

	nodeEnvDefinition = "process.env.NODE_ENV"
	styleLoader       = "style-loader"
)

// Fragment returns the override fragment for profile. The result depends
// only on profile and the composer options.
func (c *Composer) Fragment(profile models.Profile) (models.OverrideFragment, error) {
	switch profile {
	case models.Development:
		return c.developmentFragment(), nil
	case models.Production:
		return c.productionFragment(), nil
	default:
		return models.OverrideFragment{}, fmt.Errorf("%w: %q", models.ErrInvalidEnvironmentProfile, profile)
	}
}

// defaultPlugins are shared by both profiles and always precede the
// profile-specific plugins.
func defaultPlugins(profile models.Profile) models.Plugins {
	return models.Plugins{
		models.DefinePlugin{Definitions: map[string]string{
			nodeEnvDefinition: strconv.Quote(profile.String()),
		}},
		models.HTMLEntryPlugin{},
	}
}

func styleProcessors() []models.Loader {
	return []models.Loader{
		{Loader: "css-loader"},
		{Loader: "postcss-loader", Options: map[string]any{"sourceMap": true}},
		{Loader: "stylus-loader"},
	}
}

func (c *Composer) developmentFragment() models.OverrideFragment {
	devServer := c.opts.DevServer

	return models.OverrideFragment{
		Profile: models.Development,
		Config: models.BuildConfiguration{
			Mode: models.Development.String(),
			Output: models.Output{
				Filename: "[name].js",
			},
			Module: models.Module{Rules: []models.Rule{{
				Test: StylePattern,
				Use:  append([]models.Loader{{Loader: styleLoader}}, styleProcessors()...),
			}}},
			Plugins: append(defaultPlugins(models.Development),
				models.HotReloadPlugin{},
				models.NoEmitOnErrorsPlugin{},
			),
			Devtool:   DevelopmentDevtool,
			DevServer: &devServer,
		},
		Declared: []models.Field{
			models.FieldMode,
			models.FieldOutput,
			models.FieldRules,
			models.FieldPlugins,
			models.FieldDevtool,
			models.FieldDevServer,
		},
	}
}

func (c *Composer) productionFragment() models.OverrideFragment {
	return models.OverrideFragment{
		Profile: models.Production,
		Config: models.BuildConfiguration{
			Mode: models.Production.String(),
			Entry: models.Entries{
				c.opts.VendorEntry: slices.Clone(c.opts.VendorModules),
			},
			Output: models.Output{
				Filename: fmt.Sprintf("[name].[chunkhash:%d].js", c.opts.HashLength),
			},
			Module: models.Module{Rules: []models.Rule{{
				Test:    StylePattern,
				Use:     styleProcessors(),
				Extract: &models.StyleExtract{Fallback: styleLoader},
			}}},
			Plugins: append(defaultPlugins(models.Production),
				models.StyleExtractPlugin{Filename: fmt.Sprintf("styles.[contenthash:%d].css", c.opts.HashLength)},
				models.BundleSplitPlugin{Name: c.opts.VendorEntry},
				models.BundleSplitPlugin{Name: c.opts.RuntimeChunk, Runtime: true},
			),
			// a production build never starts a dev server, even if the base declares one
			DevServer: nil,
		},
		Declared: []models.Field{
			models.FieldMode,
			models.FieldEntry,
			models.FieldOutput,
			models.FieldRules,
			models.FieldPlugins,
			models.FieldDevServer,
		},
	}
}
