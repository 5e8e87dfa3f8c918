package accel

import (
	"os"
	"strings"
)

// Kernel identifies a CRC update loop implementation.
type Kernel uint8

const (
	// Generic is the portable byte-wise table loop.
	Generic Kernel = iota
	// Hardware delegates to the CPU's CRC instructions (CRC32, PCLMULQDQ).
	Hardware
)

// Polynomials with hardware support, in normal form.
const (
	PolyIEEE       uint32 = 0x04C11DB7
	PolyCastagnoli uint32 = 0x1EDC6F41
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware", "hw":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state, set once by the platform-specific init.
var (
	// preferred is the kernel chosen for eligible algorithms.
	preferred Kernel

	// hasOverride is true if CRCGO_KERNEL was set to a valid kernel.
	hasOverride bool

	hasIEEE       bool
	hasCastagnoli bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("CRCGO_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			if k == Generic || hasIEEE || hasCastagnoli {
				preferred = k
				return
			}
			// Hardware requested but unavailable: fall through.
		}
	}

	if hasIEEE || hasCastagnoli {
		preferred = Hardware
		return
	}
	preferred = Generic
}

// Preferred returns the kernel selected for this process.
func Preferred() Kernel {
	return preferred
}

// IsOverridden returns true if CRCGO_KERNEL was set.
func IsOverridden() bool {
	return hasOverride
}

// HasIEEE returns true if CRC-32/ISO-HDLC can run on hardware.
func HasIEEE() bool {
	return hasIEEE
}

// HasCastagnoli returns true if CRC-32C can run on hardware.
func HasCastagnoli() bool {
	return hasCastagnoli
}

// Supports reports whether the reflected 32-bit CRC with the given
// normal-form polynomial has a hardware implementation on this CPU.
func Supports(poly uint32) bool {
	switch poly {
	case PolyIEEE:
		return hasIEEE
	case PolyCastagnoli:
		return hasCastagnoli
	default:
		return false
	}
}
