package vocab

// NamedTime pairs the literal time strings a named time of day expands to,
// one per notation. ReplaceNamedTimes substitutes whichever form matches the
// grammar about to run.
type NamedTime struct {
	Time12 string // 12h form, e.g. "12:00AM"
	Time24 string // 24h form, e.g. "00:00"
}

// NamedDayRangesDK maps Danish named day ranges.
var NamedDayRangesDK = map[string][]string{
	"Hverdage": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, // Weekdays
}

// NamedDayRangesEN maps English named day ranges to the canonical days they
// expand to.
var NamedDayRangesEN = map[string][]string{
	"Daily":    {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"All Days": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"Weekday":  {"Mo", "Tu", "We", "Th", "Fr"},
	"Weekdays": {"Mo", "Tu", "We", "Th", "Fr"},
	"Weekend":  {"Sa", "Su"},
	"Weekends": {"Sa", "Su"},
}

// NamedTimesEN maps English named times of day.
var NamedTimesEN = map[string]NamedTime{
	"Midday":   {Time12: "12:00PM", Time24: "12:00"},
	"Midnight": {Time12: "12:00AM", Time24: "00:00"},
}

// NamedDayRangesIT maps Italian named day ranges.
var NamedDayRangesIT = map[string][]string{
	"Ogni Giorno":       {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"Tutti I Giorni":    {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"Giorni Lavorativi": {"Mo", "Tu", "We", "Th", "Fr"},
	"Lavorativi":        {"Mo", "Tu", "We", "Th", "Fr"},
	"Giorni Feriali":    {"Mo", "Tu", "We", "Th", "Fr"},
	"Feriali":           {"Mo", "Tu", "We", "Th", "Fr"},
	"Weekend":           {"Sa", "Su"},
	"Weekends":          {"Sa", "Su"},
	"Prefestivi":        {"Sa"},
	"Prefestivo":        {"Sa"},
}

// NamedTimesIT maps Italian named times of day.
var NamedTimesIT = map[string]NamedTime{
	"Mezzogiorno": {Time12: "12:00PM", Time24: "12:00"},
	"Mezzanotte":  {Time12: "12:00AM", Time24: "00:00"},
}

// NamedDayRangesRU maps Russian named day ranges.
var NamedDayRangesRU = map[string][]string{
	"Ежедневно":  {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, // Daily
	"Eжедн":      {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, // Daily
	"По Будням":  {"Mo", "Tu", "We", "Th", "Fr"},             // Weekdays
	"По Выходным": {"Sa", "Su"},                              // Weekends
}

// NamedTimesRU maps Russian named times of day.
var NamedTimesRU = map[string]NamedTime{
	"Круглосуточно": {Time12: "00:00", Time24: "23:59"}, // around the clock
}

// NamedDayRangesKR maps Korean named day ranges.
var NamedDayRangesKR = map[string][]string{
	"연중무휴": {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"연중무":  {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"중무휴":  {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
	"연중":   {"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
}
