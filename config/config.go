// Package config reads declarative plot descriptions and turns them into
// views and representations.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrFormat = errors.New("unsupported format")

const (
	FormatToml = "toml"
	FormatYaml = "yaml"
)

const (
	KindContinuous  = "continuous"
	KindCategorical = "categorical"
)

const (
	LayerScatter   = "scatter"
	LayerLine      = "line"
	LayerFunction  = "function"
	LayerHistogram = "histogram"
	LayerBar       = "bar"
	LayerBox       = "box"
)

type Plot struct {
	Title   string   `toml:"title" yaml:"title"`
	Width   float64  `toml:"width" yaml:"width"`
	Height  float64  `toml:"height" yaml:"height"`
	Columns int      `toml:"columns" yaml:"columns"`
	Padding *Padding `toml:"padding" yaml:"padding"`
	Theme   Theme    `toml:"theme" yaml:"theme"`
	Views   []View   `toml:"view" yaml:"views"`

	// Dir is the directory data files are resolved against.
	Dir string `toml:"-" yaml:"-"`
}

type Padding struct {
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
}

type Theme struct {
	Palette  string  `toml:"palette" yaml:"palette"`
	FontSize float64 `toml:"font-size" yaml:"font-size"`
	Axis     string  `toml:"axis" yaml:"axis"`
}

type Axis struct {
	Label      string    `toml:"label" yaml:"label"`
	Ticks      int       `toml:"ticks" yaml:"ticks"`
	Domain     []float64 `toml:"domain" yaml:"domain"`
	Nice       bool      `toml:"nice" yaml:"nice"`
	Grid       bool      `toml:"grid" yaml:"grid"`
	Categories []string  `toml:"categories" yaml:"categories"`
}

type View struct {
	Title  string  `toml:"title" yaml:"title"`
	Kind   string  `toml:"kind" yaml:"kind"`
	X      Axis    `toml:"x" yaml:"x"`
	Y      Axis    `toml:"y" yaml:"y"`
	Layers []Layer `toml:"layer" yaml:"layers"`
}

type Layer struct {
	Type   string `toml:"type" yaml:"type"`
	File   string `toml:"file" yaml:"file"`
	X      int    `toml:"x" yaml:"x"`
	Y      int    `toml:"y" yaml:"y"`
	Legend string `toml:"legend" yaml:"legend"`

	Bins      int     `toml:"bins" yaml:"bins"`
	BarWidth  float64 `toml:"bar-width" yaml:"bar-width"`
	WithValue bool    `toml:"with-value" yaml:"with-value"`

	Func    string  `toml:"func" yaml:"func"`
	From    float64 `toml:"from" yaml:"from"`
	To      float64 `toml:"to" yaml:"to"`
	Samples int     `toml:"samples" yaml:"samples"`

	Color   string  `toml:"color" yaml:"color"`
	Fill    string  `toml:"fill" yaml:"fill"`
	Marker  string  `toml:"marker" yaml:"marker"`
	Line    string  `toml:"line" yaml:"line"`
	Width   float64 `toml:"width" yaml:"width"`
	Size    float64 `toml:"size" yaml:"size"`
	Opacity float64 `toml:"opacity" yaml:"opacity"`
	Glyph   string  `toml:"glyph" yaml:"glyph"`
}

// Load reads the plot description stored in file. The format is chosen
// from the extension of the file.
func Load(file string) (*Plot, error) {
	format, err := formatOf(file)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	p, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if p.Dir == "" {
		p.Dir = filepath.Dir(file)
	}
	return p, nil
}

func Decode(r io.Reader, format string) (*Plot, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var p Plot
	switch format {
	case FormatToml:
		err = toml.NewDecoder(bytes.NewReader(buf)).DisallowUnknownFields().Decode(&p)
	case FormatYaml:
		dec := yaml.NewDecoder(bytes.NewReader(buf))
		dec.KnownFields(true)
		err = dec.Decode(&p)
	default:
		err = fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func formatOf(file string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		return FormatToml, nil
	case ".yaml", ".yml":
		return FormatYaml, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}
