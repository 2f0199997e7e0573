// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders a human-readable summary of a composed
// configuration for terminals.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-bundle-composer/models"
)

// ErrNothingToDescribe is returned for a composed configuration that was
// never sealed.
var ErrNothingToDescribe = errors.New("nothing to describe: composed configuration is empty")

// Describe writes a summary of cc to w: the profile and fingerprint, the
// entries, the output naming, the rule chains, the plugins in order and the
// development server, if any.
func Describe(w io.Writer, cc models.ComposedConfiguration) error {
	if cc.IsZero() {
		return ErrNothingToDescribe
	}

	s := newStyles(lipgloss.NewRenderer(w))
	cfg := cc.Config()

	header := s.box.Render(fmt.Sprintf("%s  %s\n%s",
		s.title.Render("PROFILE"), cc.Profile(),
		s.faint.Render("fingerprint "+cc.Fingerprint()),
	))

	sections := []string{
		header,
		section(s, "Build", describeBuild(s, cfg)),
		section(s, "Entries", describeEntries(cfg.Entry)),
		section(s, "Rules", describeRules(cfg.Module.Rules)),
		section(s, "Plugins", describePlugins(cfg.Plugins)),
		section(s, "Dev server", describeDevServer(s, cfg.DevServer)),
	}

	_, err := io.WriteString(w, s.page.Render(strings.Join(sections, "\n\n"))+"\n")
	return err
}

func section(s styles, title, body string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	return s.section.Render(title) + "\n" + divider + "\n" + body
}

func row(s styles, key, value string) string {
	if value == "" {
		value = "-"
	}
	return s.key.Render(key) + value
}

func describeBuild(s styles, cfg models.BuildConfiguration) string {
	return strings.Join([]string{
		row(s, "mode", cfg.Mode),
		row(s, "devtool", cfg.Devtool),
		row(s, "path", cfg.Output.Path),
		row(s, "public path", cfg.Output.PublicPath),
		row(s, "filename", cfg.Output.Filename),
	}, "\n")
}

func describeEntries(entries models.Entries) string {
	lines := make([]string, 0, len(entries))
	for _, name := range entries.Names() {
		lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(entries[name], ", ")))
	}
	return strings.Join(lines, "\n")
}

func describeRules(rules []models.Rule) string {
	lines := make([]string, 0, len(rules))
	for _, rule := range rules {
		line := fmt.Sprintf("%s -> %s", rule.Test, strings.Join(rule.LoaderNames(), " ! "))
		if rule.Extract != nil {
			line += fmt.Sprintf(" [extract, fallback %s]", rule.Extract.Fallback)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func describePlugins(plugins models.Plugins) string {
	lines := make([]string, 0, len(plugins))
	for i, plugin := range plugins {
		line := fmt.Sprintf("%d. %s", i+1, plugin.Kind())
		if detail := pluginDetail(plugin); detail != "" {
			line += " (" + detail + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func pluginDetail(plugin models.Plugin) string {
	switch p := plugin.(type) {
	case models.DefinePlugin:
		keys := make([]string, 0, len(p.Definitions))
		for key := range p.Definitions {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, key+"="+p.Definitions[key])
		}
		return strings.Join(pairs, ", ")
	case models.HTMLEntryPlugin:
		if p.Filename == "" {
			return p.Template
		}
		return p.Template + " -> " + p.Filename
	case models.StyleExtractPlugin:
		return p.Filename
	case models.BundleSplitPlugin:
		if p.Runtime {
			return p.Name + ", runtime"
		}
		return p.Name
	default:
		return ""
	}
}

func describeDevServer(s styles, ds *models.DevServer) string {
	if ds == nil {
		return ""
	}
	return strings.Join([]string{
		row(s, "address", fmt.Sprintf("%s:%d", ds.Host, ds.Port)),
		row(s, "hot", fmt.Sprint(ds.Hot)),
		row(s, "overlay", fmt.Sprintf("errors=%t", ds.Overlay.Errors)),
		row(s, "open", fmt.Sprint(ds.Open)),
	}, "\n")
}
