package passphrase

// Strength is a coarse label for an entropy figure.
type Strength string

const (
	Weak       Strength = "weak"
	Fair       Strength = "fair"
	Strong     Strength = "strong"
	VeryStrong Strength = "very strong"
)

// Rate labels bits of entropy. The thresholds follow common guidance for
// offline-attack resistance.
func Rate(bits float64) Strength {
	switch {
	case bits < 50:
		return Weak
	case bits < 64:
		return Fair
	case bits < 80:
		return Strong
	default:
		return VeryStrong
	}
}
