// Package accel detects CPU support for hardware CRC-32 computation.
//
// Only the reflected 32-bit CRCs over the IEEE (0x04C11DB7) and Castagnoli
// (0x1EDC6F41) polynomials have instruction-level support:
//
//	Platform  IEEE                 Castagnoli
//	amd64     PCLMULQDQ + SSE4.1   SSE4.2
//	arm64     CRC32                CRC32
//
// The selection can be forced with the CRCGO_KERNEL environment variable
// ("generic" or "hardware"). A hardware request on a CPU without support
// falls back to auto-detection.
package accel
