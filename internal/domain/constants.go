package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// CutoffNone сохраненное значение "без времени отсечки"
const CutoffNone = "NONE"

// WeekdayKeys weekday tags in time.Weekday order (Sunday = 0).
var WeekdayKeys = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Default configuration values
const (
	DefaultLeadTimeDays = 1
	DefaultRangeDays    = 30

	DefaultAttrDateName      = "delivery_date"
	DefaultAttrTimeName      = "delivery_time"
	DefaultAttrPlacementName = "delivery_placement"
)

// Business validation constants
const (
	MinLeadTimeDays = 0
	MaxLeadTimeDays = 365
	MinRangeDays    = 1
	MaxRangeDays    = 366

	MaxNoticeTextLength = 1000
	MaxTagLength        = 255
)

// MaxBusinessDayScan bounds the next-business-day search. A configuration
// that forces more iterations (e.g. all seven weekdays marked holiday) is a
// configuration fault, not a reason to spin.
const MaxBusinessDayScan = 366

// PolicyReasonDenyTag reason code for a deny-tag disabled policy.
const PolicyReasonDenyTag = "deny_tag"
