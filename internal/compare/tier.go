// internal/compare/tier.go
package compare

// Tier classifies a percentage of baseline.
type Tier int

const (
	// TierNone is used for the baseline itself, free models on cost, and
	// comparisons that are not applicable.
	TierNone Tier = iota
	// TierAbove is at or better than the baseline.
	TierAbove
	// TierNear is within the metric's near band of the baseline.
	TierNear
	// TierBelow is worse than the baseline by more than the near band.
	TierBelow
)

// String returns the short name used in JSON and CSS classes.
func (t Tier) String() string {
	switch t {
	case TierAbove:
		return "above"
	case TierNear:
		return "near"
	case TierBelow:
		return "below"
	default:
		return "none"
	}
}

// Description is the human-readable meaning of the tier.
func (t Tier) Description() string {
	switch t {
	case TierAbove:
		return "at or above baseline"
	case TierNear:
		return "near baseline"
	case TierBelow:
		return "below baseline"
	default:
		return ""
	}
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Polarity says which direction of a metric is favorable.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

// MarshalText encodes the polarity by name.
func (p Polarity) MarshalText() ([]byte, error) {
	if p == LowerIsBetter {
		return []byte("lower"), nil
	}
	return []byte("higher"), nil
}

// Classifier maps a percent-of-baseline to a Tier. NearBand is the width, in
// percentage points, of the near tier on the unfavorable side of 100.
type Classifier struct {
	Polarity Polarity `json:"polarity"`
	NearBand float64  `json:"nearBand"`
}

// Classify returns the tier of percent.
func (c Classifier) Classify(percent float64) Tier {
	if c.Polarity == LowerIsBetter {
		switch {
		case percent <= 100:
			return TierAbove
		case percent <= 100+c.NearBand:
			return TierNear
		default:
			return TierBelow
		}
	}
	switch {
	case percent >= 100:
		return TierAbove
	case percent >= 100-c.NearBand:
		return TierNear
	default:
		return TierBelow
	}
}
