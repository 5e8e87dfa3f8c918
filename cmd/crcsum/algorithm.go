package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/catalog"
)

// parseHex parses a hex value with or without a 0x prefix.
func parseHex(field, s string) (uint32, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return 0, usagef("%s: empty value", field)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, usagef("%s: invalid hex value %q", field, s)
	}
	return uint32(v), nil
}

func newCatalog(cfg *Config) (*catalog.Catalog, error) {
	cat := catalog.New()
	if cfg.Presets != "" {
		if err := cat.LoadFile(cfg.Presets); err != nil {
			return nil, usagef("presets: %w", err)
		}
	}
	return cat, nil
}

// resolveAlgorithm returns the custom algorithm described by the --width
// family of flags, or the catalog entry named by --algorithm.
func resolveAlgorithm(cfg *Config, cat *catalog.Catalog) (*crcgo.Algorithm, error) {
	if cfg.Width == 0 {
		alg, err := cat.Lookup(cfg.Algorithm)
		if err != nil {
			return nil, &usageError{err: err}
		}
		return alg, nil
	}

	if cfg.Poly == "" {
		return nil, usagef("--poly is required with --width")
	}

	alg := &crcgo.Algorithm{
		Name:   "custom",
		Width:  cfg.Width,
		RefIn:  cfg.RefIn,
		RefOut: cfg.RefOut,
	}

	var err error
	if alg.Poly, err = parseHex("poly", cfg.Poly); err != nil {
		return nil, err
	}
	if alg.Init, err = parseHex("init", cfg.Init); err != nil {
		return nil, err
	}
	if alg.XorOut, err = parseHex("xorout", cfg.XorOut); err != nil {
		return nil, err
	}
	if err := alg.Validate(); err != nil {
		return nil, &usageError{err: err}
	}

	return alg, nil
}

func listAlgorithms(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWIDTH\tPOLY\tINIT\tREFIN\tREFOUT\tXOROUT\tCHECK")
	for _, alg := range cat.All() {
		d := alg.HexDigits()
		fmt.Fprintf(tw, "%s\t%d\t0x%0*x\t0x%0*x\t%t\t%t\t0x%0*x\t0x%0*x\n",
			alg.Name, alg.Width,
			d, alg.Poly, d, alg.Init,
			alg.RefIn, alg.RefOut,
			d, alg.XorOut, d, alg.Check,
		)
	}
	return tw.Flush()
}
