//go:build !linux

package device

import "errors"

// OpenBlockDevice is only implemented on Linux, where the BLKSSZGET/BLKBSZGET
// ioctls are available. On other platforms, use Open against a plain image
// file instead.
func OpenBlockDevice(path string) (*Device, error) {
	return nil, errors.New("device: opening a raw block device is only supported on linux")
}
