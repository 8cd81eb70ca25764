//go:build !unix

package terminal

import "time"

// Without poll(2) the next read simply blocks, as in blocking escape mode.
func waitReadable(int, time.Duration) (bool, error) {
	return true, nil
}
