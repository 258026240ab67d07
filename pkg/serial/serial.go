// Package serial generates opaque, globally unique serial numbers for MOFs.
package serial

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generate returns a serial like "MOF-20260901143015-3F82A1C4": a prefix, a
// second-resolution timestamp and a random suffix. The timestamp keeps
// serials roughly sortable; the 8 hex chars of a fresh UUID make a collision
// between two forms created in the same second negligible.
func Generate(prefix string) string {
	ts := time.Now().Format("20060102150405")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, ts, suffix)
}
