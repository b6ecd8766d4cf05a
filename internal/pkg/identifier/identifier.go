package identifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Collection prefixes
const (
	PrefixEmployee   = "emp"
	PrefixProject    = "prj"
	PrefixAttendance = "att"
	PrefixAdvance    = "adv"
	PrefixPayout     = "pay"
)

// New generates a collection-unique identifier of the form
// <prefix>-<unix-millis>-<random-suffix>. The random suffix guards
// against two records created within the same millisecond.
func New(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
