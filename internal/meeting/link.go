// Package meeting generates opaque meeting-room links. There is no
// scheduling intelligence here: no conflict detection, no reachability
// check, just a URL nobody can guess.
package meeting

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

const segmentLen = 5

// NewLink assembles a room URL from the configured base, two random base36
// segments and a base36 timestamp.
func NewLink(base string) (string, error) {
	first, err := segment(segmentLen)
	if err != nil {
		return "", err
	}
	second, err := segment(segmentLen)
	if err != nil {
		return "", err
	}

	stamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return fmt.Sprintf("%s/%s-%s-%s", base, first, second, stamp), nil
}

func segment(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("meeting link entropy: %w", err)
	}
	for i := range buf {
		buf[i] = base36[int(buf[i])%len(base36)]
	}
	return string(buf), nil
}
