//go:build crcgo_restricted

package crcgo

func defaultByteValidator() ByteValidator {
	return RangeValidator{}
}
