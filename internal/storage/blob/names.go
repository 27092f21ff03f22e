package blob

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"taxsite/internal/pkg/sanitize"
)

const suffixLen = 6

// RandomSuffix returns six base-36 characters.
func RandomSuffix() string {
	const space = 36 * 36 * 36 * 36 * 36 * 36
	s := strconv.FormatInt(rand.Int64N(space), 36)
	if len(s) < suffixLen {
		s = strings.Repeat("0", suffixLen-len(s)) + s
	}
	return s
}

// TrimPrefix drops leading and trailing slashes from a blob prefix.
func TrimPrefix(prefix string) string {
	return strings.Trim(prefix, "/")
}

// ObjectName builds "{prefix}/{millis}-{suffix}-{safe name}"; the prefix part is
// omitted when prefix is empty.
func ObjectName(prefix string, at time.Time, suffix, original string) string {
	name := strconv.FormatInt(at.UnixMilli(), 10) + "-" + suffix + "-" + sanitize.BlobName(original)
	if p := TrimPrefix(prefix); p != "" {
		return p + "/" + name
	}
	return name
}

// LeadPrefix is the date folder new attachments go to: leads/{year}/{month}.
func LeadPrefix(at time.Time) string {
	at = at.UTC()
	return "leads/" + strconv.Itoa(at.Year()) + "/" + twoDigits(int(at.Month()))
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
