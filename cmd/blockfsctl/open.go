package main

import (
	"fmt"

	"github.com/diskfs/go-blockfs/device"
	"github.com/diskfs/go-blockfs/filesystem/blockfs"
)

// openImage opens an existing image file and loads its filesystem handle.
// Callers are responsible for closing the returned FileSystem via Shutdown.
func openImage(path string) (*blockfs.FileSystem, error) {
	dev, err := device.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	fs, err := blockfs.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("reading superblock from %s: %w", path, err)
	}
	return fs, nil
}

// createImage creates a new, zero-filled image file sized to device.Size
// and loads an (unformatted) filesystem handle onto it.
func createImage(path string) (*blockfs.FileSystem, error) {
	dev, err := device.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	fs, err := blockfs.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("reading superblock from %s: %w", path, err)
	}
	return fs, nil
}
