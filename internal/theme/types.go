package theme

import "time"

// ID identifies a site theme.
type ID string

const (
	Default    ID = "default-enterprise"
	Seasonal26 ID = "seasonal-2026"
)

// Remaining is the whole days and hours left until the seasonal theme ends.
type Remaining struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

// StatusResponse is the theme read-out served to the frontend.
type StatusResponse struct {
	Theme              ID         `json:"theme"`
	IsSeasonal         bool       `json:"isSeasonal"`
	TimeUntilReversion *Remaining `json:"timeUntilReversion,omitempty"`
}

// ActiveTheme returns the seasonal theme inside the half-open window
// [start, end) and the default theme otherwise.
func ActiveTheme(now, start, end time.Time) ID {
	if !now.Before(start) && now.Before(end) {
		return Seasonal26
	}
	return Default
}

// TimeUntil returns the time left before end, or nil once end has passed.
func TimeUntil(now, end time.Time) *Remaining {
	diff := end.Sub(now)
	if diff <= 0 {
		return nil
	}
	const day = 24 * time.Hour
	return &Remaining{
		Days:  int(diff / day),
		Hours: int((diff % day) / time.Hour),
	}
}
