package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hupe1980/crcgo"
)

var (
	// ErrUnknownAlgorithm is returned when a name matches no preset.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrDuplicateName is returned when a name or alias is already taken.
	ErrDuplicateName = errors.New("duplicate algorithm name")
)

// Catalog maps names and aliases to algorithms.
// Lookups are case-insensitive. A Catalog is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	byName map[string]*crcgo.Algorithm
	algs   []*crcgo.Algorithm
}

// New returns a catalog holding the built-in presets.
func New() *Catalog {
	c := &Catalog{byName: make(map[string]*crcgo.Algorithm)}
	for _, p := range builtin {
		if err := c.Add(p.alg, p.aliases...); err != nil {
			panic(err)
		}
	}
	return c
}

// Empty returns a catalog without presets.
func Empty() *Catalog {
	return &Catalog{byName: make(map[string]*crcgo.Algorithm)}
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add registers alg under its Name and the given aliases.
// Nothing is registered if any name is already taken.
func (c *Catalog) Add(alg *crcgo.Algorithm, aliases ...string) error {
	if alg.Name == "" {
		return errors.New("algorithm name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	names := append([]string{alg.Name}, aliases...)
	for _, n := range names {
		if _, ok := c.byName[normalize(n)]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, n)
		}
	}
	for _, n := range names {
		c.byName[normalize(n)] = alg
	}
	c.algs = append(c.algs, alg)
	return nil
}

// Lookup returns the algorithm registered under name or alias.
func (c *Catalog) Lookup(name string) (*crcgo.Algorithm, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	alg, ok := c.byName[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// All returns the registered algorithms sorted by width (widest first),
// then name.
func (c *Catalog) All() []*crcgo.Algorithm {
	c.mu.RLock()
	out := make([]*crcgo.Algorithm, len(c.algs))
	copy(out, c.algs)
	c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width > out[j].Width
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var defaultCatalog = New()

// Lookup finds a built-in preset by name or alias.
func Lookup(name string) (*crcgo.Algorithm, error) {
	return defaultCatalog.Lookup(name)
}

// All returns the built-in presets.
func All() []*crcgo.Algorithm {
	return defaultCatalog.All()
}
