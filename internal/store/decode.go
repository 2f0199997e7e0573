package store

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/MKhiriev/go-bundle-composer/models"
)

var (
	pluginsType = reflect.TypeOf(models.Plugins{})
	loaderType  = reflect.TypeOf(models.Loader{})
)

// decodeBuildConfiguration decodes a generic document, as produced by the
// JSON, YAML and TOML parsers, into a BuildConfiguration. Keys follow the
// json tags of the model.
func decodeBuildConfiguration(doc map[string]any) (models.BuildConfiguration, error) {
	var cfg models.BuildConfiguration
	if err := decode(doc, &cfg); err != nil {
		return models.BuildConfiguration{}, err
	}
	return cfg, nil
}

func decode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToLoaderHookFunc(),
			pluginEnvelopesHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	return decoder.Decode(input)
}

// stringToLoaderHookFunc accepts the short "name-loader" form of a loader.
func stringToLoaderHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != loaderType {
			return data, nil
		}
		return models.Loader{Loader: data.(string)}, nil
	}
}

// pluginEnvelopesHookFunc turns a list of {kind, options} envelopes into
// typed plugins. TOML arrays of tables arrive as []map[string]any, the other
// parsers produce []any.
func pluginEnvelopesHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != pluginsType {
			return data, nil
		}
		if f.Kind() != reflect.Slice {
			return nil, fmt.Errorf("plugins: expected a list, got %s", f)
		}

		list := reflect.ValueOf(data)
		plugins := make(models.Plugins, 0, list.Len())
		for i := range list.Len() {
			plugin, err := decodePlugin(list.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("plugin #%d: %w", i, err)
			}
			plugins = append(plugins, plugin)
		}
		return plugins, nil
	}
}

func decodePlugin(raw any) (models.Plugin, error) {
	var envelope struct {
		Kind    models.PluginKind `json:"kind"`
		Options map[string]any    `json:"options"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}

	plugin, err := models.NewPlugin(envelope.Kind)
	if err != nil {
		return nil, err
	}
	if len(envelope.Options) > 0 {
		if err = decode(envelope.Options, plugin); err != nil {
			return nil, fmt.Errorf("%s options: %w", envelope.Kind, err)
		}
	}

	return models.Deref(plugin), nil
}
