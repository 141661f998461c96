//go:build !linux

package bridge

import (
	"fmt"
	"os"
)

// OpenSerial opens the serial device at path. The line settings are left as they are, so the device must already be
// set to raw 8N1 at the expected baud rate.
func OpenSerial(path string, baud int) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("bridge: open %s: %w", path, err)
	}
	return f, nil
}
