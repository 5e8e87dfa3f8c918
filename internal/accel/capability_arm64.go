//go:build arm64

package accel

import "golang.org/x/sys/cpu"

func init() {
	hasIEEE = cpu.ARM64.HasCRC32
	hasCastagnoli = cpu.ARM64.HasCRC32
	initCapabilities()
}
