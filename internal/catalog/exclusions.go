package catalog

// DefaultExclusions returns the tickers that are never matched because
// they coincide with common English words ("ARE", "ALL", "NOW", ...) and
// produce far more false positives than genuine mentions.
//
// The set applies to ticker-type matches only; the same token can still
// match a company name.
func DefaultExclusions() map[string]struct{} {
	return map[string]struct{}{
		"ARE":  {},
		"HAS":  {},
		"ALL":  {},
		"NOW":  {},
		"TECH": {},
		"KEY":  {},
		"LOW":  {},
		"DAY":  {},
		"WELL": {},
		"FAST": {},
		"COST": {},
	}
}
