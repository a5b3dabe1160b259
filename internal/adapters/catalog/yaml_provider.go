package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/pinesh/internal/core/domain/shorthand"
	"github.com/AntonioJCosta/pinesh/internal/core/domain/theme"
	"github.com/AntonioJCosta/pinesh/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type document struct {
	Shorthands []shorthand.Rule `yaml:"shorthands"`
	Themes     themesSection    `yaml:"themes"`
}

type themesSection struct {
	Default  string          `yaml:"default"`
	Profiles []theme.Profile `yaml:"profiles"`
}

// YAMLProvider implements the CatalogProvider interface
// by decoding the catalog compiled into the binary.
type YAMLProvider struct {
	doc document
}

// NewYAMLProvider decodes and validates the embedded catalog.
func NewYAMLProvider() (ports.CatalogProvider, error) {
	doc, err := decode(embeddedCatalog)
	if err != nil {
		return nil, err
	}
	return &YAMLProvider{doc: doc}, nil
}

// GetShorthands returns the rewrite rules in priority order.
func (p *YAMLProvider) GetShorthands() ([]shorthand.Rule, error) {
	return append([]shorthand.Rule(nil), p.doc.Shorthands...), nil
}

// GetThemes returns the theme catalog.
func (p *YAMLProvider) GetThemes() (theme.Catalog, error) {
	return theme.NewCatalog(p.doc.Themes.Profiles, p.doc.Themes.Default), nil
}

func decode(data []byte) (document, error) {
	var doc document
	if len(data) == 0 {
		return doc, fmt.Errorf("embedded catalog is empty")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return doc, fmt.Errorf("embedded catalog is empty")
		}
		return doc, fmt.Errorf("failed to unmarshal embedded catalog: %w", err)
	}

	if err := validate(doc); err != nil {
		return doc, fmt.Errorf("invalid embedded catalog: %w", err)
	}
	return doc, nil
}

func validate(doc document) error {
	for i, rule := range doc.Shorthands {
		if rule.Prefix == "" {
			return fmt.Errorf("shorthand %d has an empty prefix", i)
		}
	}

	if len(doc.Themes.Profiles) == 0 {
		return fmt.Errorf("no theme profiles defined")
	}
	seen := make(map[string]bool, len(doc.Themes.Profiles))
	for _, p := range doc.Themes.Profiles {
		if p.Name == "" {
			return fmt.Errorf("theme profile with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate theme profile %q", p.Name)
		}
		seen[p.Name] = true
	}
	if !seen[doc.Themes.Default] {
		return fmt.Errorf("default theme %q is not defined", doc.Themes.Default)
	}
	return nil
}
