package txt2epub

import (
	"time"

	"github.com/alnah/go-txt2epub/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for publication dates.
//   - "" → "" (no date)
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in a token format (e.g., "auto:YYYY-MM")
//   - "auto:preset" → current date using a named preset (day, month, year, datetime)
//   - any other value → returned unchanged when it is a W3CDTF date
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.Resolve(value, t)
}
