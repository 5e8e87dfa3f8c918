//go:build amd64

package accel

import "golang.org/x/sys/cpu"

func init() {
	hasIEEE = cpu.X86.HasPCLMULQDQ && cpu.X86.HasSSE41
	hasCastagnoli = cpu.X86.HasSSE42
	initCapabilities()
}
