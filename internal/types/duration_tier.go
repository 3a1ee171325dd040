package types

import "time"

// DurationTier selects one of the three discrete lock lengths available at
// stake time.
type DurationTier uint8

const (
	TierSixMonths DurationTier = iota
	TierTwelveMonths
	TierThreeYears
)

// Lock lengths in seconds, exact whole days.
const (
	SixMonthsSeconds    int64 = 180 * 24 * 60 * 60
	TwelveMonthsSeconds int64 = 365 * 24 * 60 * 60
	ThreeYearsSeconds   int64 = 1095 * 24 * 60 * 60
)

// Reward multipliers in basis points (10_000 = 1.00x). These are informational
// values copied into each collection at creation; nothing in the staking path
// consumes them yet.
const (
	SixMonthsMultiplierBps    uint64 = 11000
	TwelveMonthsMultiplierBps uint64 = 12500
	ThreeYearsMultiplierBps   uint64 = 15000
)

const (
	// EmergencyDelay is the mandatory waiting period between an emergency
	// unlock request and its execution.
	EmergencyDelay = 24 * time.Hour

	// AutoUnpauseDelay is reserved. It is stored alongside the pause state
	// but no operation consults it.
	AutoUnpauseDelay = 7 * 24 * time.Hour
)

func (t DurationTier) Valid() bool {
	return t <= TierThreeYears
}

// LockSeconds returns the lock length for the tier in seconds. Panics on an
// invalid tier; callers validate with Valid() first.
func (t DurationTier) LockSeconds() int64 {
	switch t {
	case TierSixMonths:
		return SixMonthsSeconds
	case TierTwelveMonths:
		return TwelveMonthsSeconds
	case TierThreeYears:
		return ThreeYearsSeconds
	default:
		panic("invalid duration tier")
	}
}

// MultiplierBps returns the reward multiplier for the tier in basis points.
func (t DurationTier) MultiplierBps() uint64 {
	switch t {
	case TierSixMonths:
		return SixMonthsMultiplierBps
	case TierTwelveMonths:
		return TwelveMonthsMultiplierBps
	case TierThreeYears:
		return ThreeYearsMultiplierBps
	default:
		panic("invalid duration tier")
	}
}

// ParseDurationTier maps the wire names used by the API back to a tier.
func ParseDurationTier(s string) (DurationTier, bool) {
	switch s {
	case "SIX_MONTHS":
		return TierSixMonths, true
	case "TWELVE_MONTHS":
		return TierTwelveMonths, true
	case "THREE_YEARS":
		return TierThreeYears, true
	default:
		return 0, false
	}
}

func (t DurationTier) String() string {
	switch t {
	case TierSixMonths:
		return "SIX_MONTHS"
	case TierTwelveMonths:
		return "TWELVE_MONTHS"
	case TierThreeYears:
		return "THREE_YEARS"
	default:
		return "UNKNOWN"
	}
}
