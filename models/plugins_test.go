package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlugins_MarshalJSON_Envelopes(t *testing.T) {
	plugins := Plugins{
		DefinePlugin{Definitions: map[string]string{"process.env.NODE_ENV": `"production"`}},
		HotReloadPlugin{},
		BundleSplitPlugin{Name: "runtime", Runtime: true},
	}

	data, err := json.Marshal(plugins)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"kind":"define","options":{"definitions":{"process.env.NODE_ENV":"\"production\""}}},
		{"kind":"hot-reload"},
		{"kind":"bundle-split","options":{"name":"runtime","runtime":true}}
	]`, string(data))
}

func TestPlugins_MarshalJSON_NilIsEmptyList(t *testing.T) {
	var plugins Plugins
	data, err := json.Marshal(plugins)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPlugins_UnmarshalJSON_ValueVariants(t *testing.T) {
	var plugins Plugins
	err := json.Unmarshal([]byte(`[
		{"kind":"html-entry","options":{"template":"index.html"}},
		{"kind":"style-extract","options":{"filename":"styles.[contenthash:8].css"}},
		{"kind":"no-emit-on-errors"}
	]`), &plugins)
	require.NoError(t, err)

	require.Len(t, plugins, 3)
	assert.Equal(t, HTMLEntryPlugin{Template: "index.html"}, plugins[0])
	assert.Equal(t, StyleExtractPlugin{Filename: "styles.[contenthash:8].css"}, plugins[1])
	assert.Equal(t, NoEmitOnErrorsPlugin{}, plugins[2])
}

func TestPlugins_UnmarshalJSON_UnknownKind(t *testing.T) {
	var plugins Plugins
	err := json.Unmarshal([]byte(`[{"kind":"uglify"}]`), &plugins)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPluginKind)
}

func TestPlugins_Clone_DoesNotShareDefinitions(t *testing.T) {
	original := Plugins{DefinePlugin{Definitions: map[string]string{"A": "1"}}}
	clone := original.Clone()

	clone[0].(DefinePlugin).Definitions["A"] = "2"

	assert.Equal(t, "1", original[0].(DefinePlugin).Definitions["A"])
}

func TestPlugins_OfKindAndSplits(t *testing.T) {
	plugins := Plugins{
		HTMLEntryPlugin{},
		BundleSplitPlugin{Name: "vendor"},
		HTMLEntryPlugin{Filename: "about.html"},
		BundleSplitPlugin{Name: "runtime", Runtime: true},
	}

	assert.Len(t, plugins.OfKind(KindHTMLEntry), 2)
	assert.Equal(t, []BundleSplitPlugin{
		{Name: "vendor"},
		{Name: "runtime", Runtime: true},
	}, plugins.Splits())
	assert.Equal(t, []PluginKind{KindHTMLEntry, KindBundleSplit, KindHTMLEntry, KindBundleSplit}, plugins.Kinds())
}

func TestLoader_JSONForms(t *testing.T) {
	data, err := json.Marshal([]Loader{
		{Loader: "css-loader"},
		{Loader: "postcss-loader", Options: map[string]any{"sourceMap": true}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["css-loader",{"loader":"postcss-loader","options":{"sourceMap":true}}]`, string(data))

	var loaders []Loader
	require.NoError(t, json.Unmarshal(data, &loaders))
	assert.Equal(t, "css-loader", loaders[0].Loader)
	assert.Equal(t, true, loaders[1].Options["sourceMap"])
}
