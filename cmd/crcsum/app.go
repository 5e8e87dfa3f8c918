package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/crcgo"
	"github.com/hupe1980/crcgo/blobstore"
	"github.com/hupe1980/crcgo/catalog"
	"github.com/hupe1980/crcgo/crcio"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// invocation carries the process environment so tests can run the command
// in-process.
type invocation struct {
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// stores overrides the store factory for a URL scheme.
	stores map[string]storeFactory
}

type app struct {
	crc     *crcgo.CRC
	logger  *crcgo.Logger
	format  crcio.Format
	limiter *rate.Limiter
	verify  bool
	stdin   io.Reader
	stores  *stores
}

type result struct {
	input string
	sum   uint32
	bytes int64
	err   error
}

func execute(ctx context.Context, inv invocation) int {
	cfg, err := loadConfig(inv.args, inv.stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return fail(inv.stderr, err)
	}

	logger, err := newLogger(cfg, inv.stderr)
	if err != nil {
		return fail(inv.stderr, err)
	}

	cat, err := newCatalog(cfg)
	if err != nil {
		return fail(inv.stderr, err)
	}

	if cfg.List {
		if err := listAlgorithms(inv.stdout, cat); err != nil {
			return fail(inv.stderr, err)
		}
		return exitOK
	}

	a, err := newApp(cfg, cat, logger, inv)
	if err != nil {
		return fail(inv.stderr, err)
	}

	var expected uint32
	if cfg.Check != "" {
		if expected, err = parseHex("check", cfg.Check); err != nil {
			return fail(inv.stderr, err)
		}
		if mask := a.crc.Algorithm().Mask(); expected&^mask != 0 {
			return fail(inv.stderr, usagef("check: 0x%x does not fit in %d bits", expected, a.crc.Algorithm().Width))
		}
	}

	results := a.run(ctx, cfg.Inputs, cfg.Jobs)

	code := exitOK
	digits := a.crc.Algorithm().HexDigits()

	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(inv.stderr, "crcsum: %s: %v\n", r.input, r.err)
			code = exitError
			continue
		}

		if cfg.Check != "" {
			logger.LogVerify(ctx, r.input, expected, r.sum)
			if r.sum != expected {
				fmt.Fprintf(inv.stderr, "crcsum: %s: %v\n", r.input, &crcio.ChecksumMismatchError{Expected: expected, Actual: r.sum})
				code = exitError
				continue
			}
			fmt.Fprintf(inv.stdout, "%s: OK\n", r.input)
			continue
		}

		fmt.Fprintf(inv.stdout, "%0*x  %s\n", digits, r.sum, r.input)
	}

	return code
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "crcsum: %v\n", err)

	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

func newLogger(cfg *Config, stderr io.Writer) (*crcgo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, usagef("--log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "":
		return crcgo.NewLogger(slog.NewTextHandler(stderr, opts)), nil
	case "json":
		return crcgo.NewLogger(slog.NewJSONHandler(stderr, opts)), nil
	default:
		return nil, usagef("--log-format: unknown format %q", cfg.LogFormat)
	}
}

func newApp(cfg *Config, cat *catalog.Catalog, logger *crcgo.Logger, inv invocation) (*app, error) {
	alg, err := resolveAlgorithm(cfg, cat)
	if err != nil {
		return nil, err
	}

	format, err := crcio.ParseFormat(cfg.Decompress)
	if err != nil {
		return nil, &usageError{err: err}
	}

	opts := []crcgo.Option{crcgo.WithLogger(logger.WithAlgorithm(alg.Name))}
	if k := strings.ToLower(strings.TrimSpace(cfg.Kernel)); k != "" && k != "auto" {
		kernel, ok := crcgo.ParseKernel(k)
		if !ok {
			return nil, usagef("--kernel: unknown kernel %q", cfg.Kernel)
		}
		opts = append(opts, crcgo.WithKernel(kernel))
	}

	return &app{
		crc:     crcgo.New(alg, opts...),
		logger:  logger,
		format:  format,
		limiter: crcio.NewLimiter(cfg.RateLimit),
		verify:  cfg.VerifyStored,
		stdin:   inv.stdin,
		stores:  newStores(cfg, inv.stores),
	}, nil
}

// run checksums inputs with at most jobs in flight. Results are returned in
// input order; a failing input does not stop the others.
func (a *app) run(ctx context.Context, inputs []string, jobs int) []result {
	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			sum, n, err := a.checksum(ctx, input)
			a.logger.LogChecksum(ctx, input, n, sum, err)
			results[i] = result{input: input, sum: sum, bytes: n, err: err}
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (a *app) checksum(ctx context.Context, input string) (uint32, int64, error) {
	if input == "-" {
		return a.sumStream(ctx, io.NopCloser(a.stdin))
	}

	loc, err := parseLocation(input)
	if err != nil {
		return 0, 0, err
	}

	store, err := a.stores.resolve(ctx, loc)
	if err != nil {
		return 0, 0, err
	}

	blob, err := store.Open(ctx, loc.key)
	if errors.Is(err, blobstore.ErrNotRegularFile) {
		return a.checksumSpecial(ctx, loc.key)
	}
	if err != nil {
		return 0, 0, err
	}
	defer blob.Close()

	if a.format != crcio.FormatNone || a.limiter != nil {
		r, err := blobstore.NewReader(ctx, blob)
		if err != nil {
			return 0, 0, err
		}
		return a.sumStream(ctx, r)
	}

	sum, err := blobstore.Checksum(ctx, a.crc, blob)
	if err != nil {
		return 0, 0, err
	}

	if a.verify {
		if err := a.verifyStored(ctx, input, blob, sum); err != nil {
			return 0, 0, err
		}
	}

	return sum, blob.Size(), nil
}

// checksumSpecial streams local paths that cannot be mapped, such as
// named pipes.
func (a *app) checksumSpecial(ctx context.Context, path string) (uint32, int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	if fi.IsDir() {
		return 0, 0, errors.New("is a directory")
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	return a.sumStream(ctx, f)
}

func (a *app) sumStream(ctx context.Context, r io.ReadCloser) (uint32, int64, error) {
	defer r.Close()

	dr, err := crcio.NewDecompressor(crcio.NewRateLimitedReader(ctx, r, a.limiter), a.format)
	if err != nil {
		return 0, 0, err
	}
	defer dr.Close()

	return crcio.Sum(ctx, a.crc, dr)
}

// verifyStored compares sum with the checksum the backend recorded for the
// object, if it has one for this algorithm.
func (a *app) verifyStored(ctx context.Context, input string, blob blobstore.Blob, sum uint32) error {
	sc, ok := blob.(blobstore.StoredChecksum)
	if !ok {
		return nil
	}

	stored, ok := sc.StoredChecksum(a.crc.Algorithm().Name)
	if !ok {
		a.logger.WithInput(input).DebugContext(ctx, "no stored checksum",
			"algorithm", a.crc.Algorithm().Name,
		)
		return nil
	}

	a.logger.LogVerify(ctx, input, stored, sum)
	if stored != sum {
		return fmt.Errorf("stored checksum: %w", &crcio.ChecksumMismatchError{Expected: stored, Actual: sum})
	}
	return nil
}
