package mmap

import "errors"

// AccessPattern is a hint to the kernel about how a mapping will be read.
type AccessPattern int

const (
	// AccessDefault gives no advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects a single front-to-back pass.
	AccessSequential
	// AccessWillNeed asks the kernel to start reading ahead now.
	AccessWillNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the file size cannot be mapped.
	ErrInvalidSize = errors.New("mmap: invalid file size")
	// ErrNotRegular is returned for directories, pipes and devices.
	ErrNotRegular = errors.New("mmap: not a regular file")
	// ErrInvalidOffset is returned for negative offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
