package timezone

import "time"

// Timestamps are stored in UTC and converted to a single fixed display
// timezone only at the presentation boundary.

// DisplayZone is the timezone used for all rendered timestamps.
const DisplayZone = "Asia/Shanghai"

const displayLayout = "2006-01-02 15:04"

var displayLoc *time.Location

func init() {
	loc, err := time.LoadLocation(DisplayZone)
	if err != nil {
		// No tzdata on the host: Shanghai has a fixed UTC+8 offset.
		loc = time.FixedZone("CST", 8*60*60)
	}
	displayLoc = loc
}

// ToDisplay converts a stored timestamp to the display timezone.
func ToDisplay(t time.Time) time.Time {
	return t.In(displayLoc)
}

// Format renders a stored timestamp for display.
func Format(t time.Time) string {
	return ToDisplay(t).Format(displayLayout)
}
