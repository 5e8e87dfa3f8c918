//go:build !amd64 && !arm64

package accel

func init() {
	initCapabilities()
}
