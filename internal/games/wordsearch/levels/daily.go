package levels

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily picks the level index and grid seed shared by every player on the
// date. Both come from HMAC-SHA256(salt, YYYY-MM-DD): the first eight bytes
// select the level, the next eight seed the generator.
func Daily(date time.Time, salt string, levels int) (index int, seed int64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)

	if levels > 0 {
		index = int(binary.BigEndian.Uint64(sum[:8]) % uint64(levels))
	}
	// Clear the sign bit so seeds print nicely.
	seed = int64(binary.BigEndian.Uint64(sum[8:16]) &^ (1 << 63))
	return index, seed
}
