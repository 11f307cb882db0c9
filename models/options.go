package models

import "fmt"

// Listing periods accepted by the top-content endpoint.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

const (
	DefaultPeriod       = PeriodMonth
	DefaultMaxThreshold = 0.34
)

// Options holds the validated settings for one analysis run.
// Built once by the CLI layer, never mutated afterwards.
type Options struct {
	Username    string
	Target      string // raw target as given, e.g. "/r/golang" or "/u/someone"
	TargetName  string // target with the /r/ or /u/ prefix stripped
	IsSubreddit bool

	Period       string
	Limit        int // 0 fetches everything the listing offers
	MaxThreshold float64
	// CountWordFreqs adds a word's per-block occurrence count when true,
	// exactly 1 per block when false.
	CountWordFreqs bool

	Stem       bool
	Language   string // ISO 639-1 code, empty disables language filtering
	FetchLinks bool
}

// ValidPeriod reports whether p names a supported listing period.
func ValidPeriod(p string) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// Validate checks that the options form a usable run configuration.
func (o *Options) Validate() error {
	if o.Username == "" {
		return fmt.Errorf("username is required")
	}
	if o.TargetName == "" {
		return fmt.Errorf("invalid target: %q", o.Target)
	}
	if !ValidPeriod(o.Period) {
		return fmt.Errorf("invalid period: %q", o.Period)
	}
	if o.Limit < 0 {
		return fmt.Errorf("invalid limit: %d", o.Limit)
	}
	if o.MaxThreshold <= 0 || o.MaxThreshold > 1 {
		return fmt.Errorf("invalid max threshold: %v, must be in (0, 1]", o.MaxThreshold)
	}
	return nil
}
