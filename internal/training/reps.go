package training

import (
	"strconv"
	"strings"
)

// DefaultReps is the fallback when the reps field cannot be parsed.
const DefaultReps = 12

// ParseRepsRange parses a reps value as entered in the builder: "10" gives
// min=max=10, "8-12" gives min=8 max=12. Anything malformed falls back to
// DefaultReps for both bounds.
func ParseRepsRange(reps string) (min, max int) {
	reps = strings.TrimSpace(reps)
	if reps == "" {
		return DefaultReps, DefaultReps
	}

	if lo, hi, found := strings.Cut(reps, "-"); found {
		minV, errLo := strconv.Atoi(strings.TrimSpace(lo))
		maxV, errHi := strconv.Atoi(strings.TrimSpace(hi))
		if errLo != nil || errHi != nil || minV <= 0 || maxV <= 0 {
			return DefaultReps, DefaultReps
		}
		return minV, maxV
	}

	v, err := strconv.Atoi(reps)
	if err != nil || v <= 0 {
		return DefaultReps, DefaultReps
	}
	return v, v
}
