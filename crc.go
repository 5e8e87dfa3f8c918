package crcgo

import (
	"hash/crc32"
	"math/bits"
	"time"

	"github.com/hupe1980/crcgo/internal/accel"
)

// Kernel identifies the update loop an engine runs.
type Kernel = accel.Kernel

const (
	// KernelGeneric is the portable byte-wise table loop.
	KernelGeneric = accel.Generic
	// KernelHardware uses the CPU's CRC instructions where available.
	KernelHardware = accel.Hardware
)

// ParseKernel parses a kernel name ("generic" or "hardware").
func ParseKernel(s string) (Kernel, bool) {
	return accel.ParseKernel(s)
}

var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// checkInput is the conventional check string of the CRC catalogue.
var checkInput = []byte("123456789")

// CRC computes checksums for one Algorithm.
//
// A CRC is immutable after New and safe for concurrent use. Streaming
// computations each get their own Digest or Hash.
type CRC struct {
	alg   *Algorithm
	table *Table
	shift uint8

	kernel  Kernel
	hwTable *crc32.Table

	validator ByteValidator
	checked   bool

	logger  *Logger
	metrics MetricsCollector
	observe bool
}

// New builds the lookup table for alg and returns an engine for it.
//
// alg is referenced, not copied, and must not be modified afterwards. New
// does not validate alg; see Algorithm.Validate.
func New(alg *Algorithm, optFns ...Option) *CRC {
	o := applyOptions(optFns)

	start := time.Now()

	c := &CRC{
		alg:       alg,
		table:     BuildTable(alg.Width, alg.Poly, alg.RefIn),
		shift:     32 - alg.Width,
		validator: o.validator,
		checked:   !isNoopValidator(o.validator),
		logger:    o.logger,
		metrics:   o.metricsCollector,
	}

	_, noop := o.metricsCollector.(NoopMetricsCollector)
	c.observe = !noop

	c.kernel, c.hwTable = selectKernel(alg, o.kernel, c.checked)

	c.metrics.RecordTableBuild(time.Since(start))
	c.logger.LogTableBuilt(alg.Name, alg.Width, c.kernel)

	return c
}

func selectKernel(alg *Algorithm, want Kernel, checked bool) (Kernel, *crc32.Table) {
	if want != KernelHardware || checked || alg.Width != 32 || !alg.RefIn {
		return KernelGeneric, nil
	}
	if !accel.Supports(alg.Poly) {
		return KernelGeneric, nil
	}

	switch alg.Poly {
	case accel.PolyIEEE:
		return KernelHardware, crc32.IEEETable
	case accel.PolyCastagnoli:
		return KernelHardware, castagnoliTable
	default:
		return KernelGeneric, nil
	}
}

// Algorithm returns the algorithm this engine computes.
func (c *CRC) Algorithm() *Algorithm {
	return c.alg
}

// Table returns the engine's lookup table. It must not be modified.
func (c *CRC) Table() *Table {
	return c.table
}

// Kernel returns the update loop in use.
func (c *CRC) Kernel() Kernel {
	return c.kernel
}

// Checksum computes the checksum of p in one shot.
func (c *CRC) Checksum(p []byte) uint32 {
	if !c.observe {
		return c.checksum(p)
	}

	start := time.Now()
	sum := c.checksum(p)
	c.metrics.RecordChecksum(int64(len(p)), time.Since(start))
	return sum
}

func (c *CRC) checksum(p []byte) uint32 {
	crc, _ := c.update(c.init(c.alg.Init), p)
	return c.finalize(crc)
}

// SelfTest checks the engine against the algorithm's Check value.
func (c *CRC) SelfTest() error {
	if got := c.Checksum(checkInput); got != c.alg.Check {
		return &ErrCheckMismatch{Name: c.alg.Name, Expected: c.alg.Check, Actual: got}
	}
	return nil
}

// init converts an external initial value into the internal register form:
// right-aligned and reflected for RefIn, top-aligned otherwise.
func (c *CRC) init(initial uint32) uint32 {
	if c.alg.RefIn {
		return bits.Reverse32(initial) >> c.shift
	}
	return initial << c.shift
}

// update advances the register over p. It returns false if a byte was
// rejected, in which case the register is SentinelRegister.
func (c *CRC) update(crc uint32, p []byte) (uint32, bool) {
	switch {
	case c.checked:
		return c.updateChecked(crc, p)
	case c.hwTable != nil:
		// crc32.Update expects the complemented register of the
		// init=xorout=~0 convention.
		return ^crc32.Update(^crc, c.hwTable, p), true
	default:
		return c.updateTable(crc, p), true
	}
}

func (c *CRC) updateTable(crc uint32, p []byte) uint32 {
	t := c.table
	if c.alg.RefIn {
		for _, b := range p {
			crc = t[byte(crc)^b] ^ crc>>8
		}
		return crc
	}
	for _, b := range p {
		crc = t[byte(crc>>24)^b] ^ crc<<8
	}
	return crc
}

func (c *CRC) updateChecked(crc uint32, p []byte) (uint32, bool) {
	t := c.table
	for i, b := range p {
		if !c.validator.ValidByte(b) {
			c.metrics.RecordSentinel()
			c.logger.LogSentinel(c.alg.Name, i)
			return SentinelRegister, false
		}
		if c.alg.RefIn {
			crc = t[byte(crc)^b] ^ crc>>8
		} else {
			crc = t[byte(crc>>24)^b] ^ crc<<8
		}
	}
	return crc, true
}

// finalize undoes the init alignment and applies RefOut and XorOut.
func (c *CRC) finalize(crc uint32) uint32 {
	if c.alg.RefIn != c.alg.RefOut {
		crc = bits.Reverse32(crc)
	}
	if !c.alg.RefOut {
		crc >>= c.shift
	}
	return crc ^ c.alg.XorOut
}
