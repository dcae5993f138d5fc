// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads picker layouts from YAML or TOML files.
//
// A layout places a slider (with its border and marker) on a canvas and
// sizes the SVG document used for vector output:
//
//	width: 320
//	height: 40
//	slider:
//	  x: 10
//	  y: 10
//	  w: 300
//	  h: 20
//	  r: 10
//	  type: v
//	  border: {width: 1, color: "#000"}
//	  marker: {radius: 8, width: 2, color: "#fff"}
//	svg:
//	  width: 320
//	  height: 320
//	  id_prefix: picker
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/picker/marker"
	"github.com/gogpu/picker/slider"
	"github.com/gogpu/picker/svg"
)

// Format is a layout file format.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ErrUnknownFormat is returned for a file extension that is neither YAML
// nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Layout is the contents of a layout file.
type Layout struct {
	Width  int          `yaml:"width" toml:"width"`
	Height int          `yaml:"height" toml:"height"`
	Slider SliderConfig `yaml:"slider" toml:"slider"`
	SVG    SVGConfig    `yaml:"svg" toml:"svg"`
}

// SliderConfig places a slider.
type SliderConfig struct {
	X      float64      `yaml:"x" toml:"x"`
	Y      float64      `yaml:"y" toml:"y"`
	W      float64      `yaml:"w" toml:"w"`
	H      float64      `yaml:"h" toml:"h"`
	R      float64      `yaml:"r" toml:"r"`
	Type   string       `yaml:"type,omitempty" toml:"type,omitempty"`
	Border BorderConfig `yaml:"border" toml:"border"`
	Marker MarkerConfig `yaml:"marker" toml:"marker"`
}

// BorderConfig is the slider outline.
type BorderConfig struct {
	Width float64 `yaml:"width" toml:"width"`
	Color string  `yaml:"color" toml:"color"`
}

// MarkerConfig is the marker ring.
type MarkerConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Width  float64 `yaml:"width" toml:"width"`
	Color  string  `yaml:"color" toml:"color"`
}

// SVGConfig sizes the vector document.
type SVGConfig struct {
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
	IDPrefix string  `yaml:"id_prefix,omitempty" toml:"id_prefix,omitempty"`
}

// Default returns the layout used when no file is given.
func Default() *Layout {
	return &Layout{
		Width:  320,
		Height: 40,
		Slider: SliderConfig{
			X: 10, Y: 10, W: 300, H: 20, R: 10,
			Type:   "v",
			Border: BorderConfig{Width: 1, Color: "#000"},
			Marker: MarkerConfig{
				Radius: marker.DefaultRadius,
				Width:  marker.DefaultWidth,
				Color:  marker.DefaultColor,
			},
		},
		SVG: SVGConfig{Width: 320, Height: 320, IDPrefix: svg.DefaultIDPrefix},
	}
}

// Load reads a layout file. Fields missing from the file keep their
// Default values.
func Load(path string) (*Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	l, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return l, nil
}

// LoadOptional is like Load but returns Default when the file does not
// exist.
func LoadOptional(path string) (*Layout, error) {
	l, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return l, err
}

// Decode parses layout data in the given format on top of Default.
func Decode(data []byte, format Format) (*Layout, error) {
	l := Default()
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, l)
	case FormatTOML:
		err = toml.Unmarshal(data, l)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Encode serializes the layout.
func (l *Layout) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(l)
	case FormatTOML:
		return toml.Marshal(l)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// SliderOptions converts the slider section to slider.Options. An unknown
// type yields picker.ErrInvalidConfiguration.
func (l *Layout) SliderOptions() (slider.Options, error) {
	c := l.Slider
	typ, err := slider.ParseType(c.Type)
	if err != nil {
		return slider.Options{}, err
	}
	return slider.Options{
		X: c.X, Y: c.Y, W: c.W, H: c.H, R: c.R,
		Border: slider.Border{Width: c.Border.Width, Color: c.Border.Color},
		Type:   typ,
		Marker: marker.Options{
			Radius: c.Marker.Radius,
			Width:  c.Marker.Width,
			Color:  c.Marker.Color,
		},
	}, nil
}

// RootOptions returns the options for svg.New.
func (l *Layout) RootOptions() []svg.RootOption {
	return []svg.RootOption{svg.WithIDPrefix(l.SVG.IDPrefix)}
}
