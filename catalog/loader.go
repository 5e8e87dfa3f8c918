package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/crcgo"
	"github.com/spf13/viper"
)

type presetFile struct {
	Algorithms []presetEntry `mapstructure:"algorithms"`
}

type presetEntry struct {
	Name    string   `mapstructure:"name"`
	Aliases []string `mapstructure:"aliases"`
	Width   uint8    `mapstructure:"width"`
	Poly    uint32   `mapstructure:"poly"`
	Init    uint32   `mapstructure:"init"`
	RefIn   bool     `mapstructure:"refin"`
	RefOut  bool     `mapstructure:"refout"`
	XorOut  uint32   `mapstructure:"xorout"`
	Check   *uint32  `mapstructure:"check"`
}

// LoadFile adds the algorithms defined in a YAML or JSON preset file.
// The format is derived from the file extension.
func (c *Catalog) LoadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read preset file: %w", err)
	}
	return c.load(v, path)
}

// Load adds the algorithms defined in r. configType is "yaml" or "json".
func (c *Catalog) Load(r io.Reader, configType string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return fmt.Errorf("failed to read presets: %w", err)
	}
	return c.load(v, "<"+configType+">")
}

func (c *Catalog) load(v *viper.Viper, source string) error {
	var f presetFile
	if err := v.Unmarshal(&f); err != nil {
		return fmt.Errorf("failed to unmarshal presets from %s: %w", source, err)
	}

	for i, e := range f.Algorithms {
		alg, err := e.algorithm()
		if err != nil {
			return fmt.Errorf("%s: algorithm #%d (%s): %w", source, i, e.Name, err)
		}
		if err := c.Add(alg, e.Aliases...); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}
	return nil
}

func (e presetEntry) algorithm() (*crcgo.Algorithm, error) {
	alg := &crcgo.Algorithm{
		Name:   strings.TrimSpace(e.Name),
		Width:  e.Width,
		Poly:   e.Poly,
		Init:   e.Init,
		RefIn:  e.RefIn,
		RefOut: e.RefOut,
		XorOut: e.XorOut,
	}
	if e.Check != nil {
		alg.Check = *e.Check
	}

	if err := alg.Validate(); err != nil {
		return nil, err
	}

	c := crcgo.New(alg)
	if e.Check == nil {
		alg.Check = c.Checksum([]byte("123456789"))
		return alg, nil
	}
	if err := c.SelfTest(); err != nil {
		return nil, err
	}
	return alg, nil
}
