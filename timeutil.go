package gamebryo

import "time"

// windowsTickToEpoch converts a FILETIME tick count (100ns intervals
// since 1601-01-01T00:00:00Z) to seconds since the Unix epoch,
// truncating into uint32 exactly as the original's
// windowsTicksToEpoch does. Grounded on graefchen-si's toTime, which
// performs the equivalent conversion through syscall.Filetime.
func windowsTickToEpoch(ticks uint64) uint32 {
	const windowsTick = 10_000_000
	const secToUnixEpoch = 11_644_473_600
	seconds := int64(ticks)/windowsTick - secToUnixEpoch
	if seconds < 0 {
		seconds = 0
	}
	return uint32(seconds)
}

// winSystemTimeToEpoch mirrors the original's mktime(&timeStruct) call
// on the embedded WINSYSTEMTIME: the broken-down fields are treated as
// local time, not UTC, matching the engine's recorded behavior even
// though the original source is ambiguous about which the engine
// actually wrote (see DESIGN.md, Open Question resolutions).
func winSystemTimeToEpoch(t winSystemTime) uint32 {
	local := time.Date(
		int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), 0,
		time.Local,
	)
	sec := local.Unix()
	if sec < 0 {
		sec = 0
	}
	return uint32(sec)
}
