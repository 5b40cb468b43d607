package fit

import (
	"fmt"
	"time"
)

// fitEpochOffset is the FIT epoch (1989-12-31T00:00:00Z) expressed as seconds
// since the Unix epoch. DateTime and LocalDateTime fields are seconds
// since this epoch.
const fitEpochOffset int64 = 631065600

// DateTime is a FIT timestamp: seconds since the FIT epoch, UTC.
type DateTime struct {
	time.Time
	valid bool
}

// NewDateTime builds a DateTime from a raw FIT timestamp value. The
// all-ones sentinel (0xFFFFFFFF) decodes to an invalid, zero-value
// DateTime.
func NewDateTime(raw uint32) DateTime {
	if raw == 0xFFFFFFFF {
		return DateTime{}
	}
	return DateTime{Time: time.Unix(fitEpochOffset+int64(raw), 0).UTC(), valid: true}
}

// Valid reports whether the timestamp carried a non-sentinel raw value.
func (d DateTime) Valid() bool { return d.valid }

// LocalDateTime is a FIT local_date_time: seconds since the FIT epoch,
// interpreted as device-local wall-clock time with no timezone attached.
// Converting it to a genuine zoned time requires comparing it against a
// DateTime field from the same message, which this package does not
// attempt.
type LocalDateTime struct {
	time.Time
	valid bool
}

// NewLocalDateTime builds a LocalDateTime from a raw FIT local_date_time
// value.
func NewLocalDateTime(raw uint32) LocalDateTime {
	if raw == 0xFFFFFFFF {
		return LocalDateTime{}
	}
	return LocalDateTime{Time: time.Unix(fitEpochOffset+int64(raw), 0).UTC(), valid: true}
}

// Valid reports whether the local timestamp carried a non-sentinel raw value.
func (d LocalDateTime) Valid() bool { return d.valid }

// MessageIndex is a uint16 with bit 15 used as a "selected" flag and the
// low 12 bits carrying the actual index.
type MessageIndex uint16

const (
	messageIndexSelectedBit = 0x8000
	messageIndexMask        = 0x0FFF
)

// NewMessageIndex wraps a raw message_index field value.
func NewMessageIndex(raw uint16) MessageIndex { return MessageIndex(raw) }

// Index returns the index portion, ignoring the selected flag and
// reserved bits.
func (m MessageIndex) Index() uint16 { return uint16(m) & messageIndexMask }

// Selected reports whether the selected bit is set.
func (m MessageIndex) Selected() bool { return uint16(m)&messageIndexSelectedBit != 0 }

// LeftRightBalance is a uint8 power-balance field: bit 7 indicates the
// right leg/side and bits 0-6 carry the percentage.
type LeftRightBalance uint8

// Right reports whether the value describes the right side.
func (b LeftRightBalance) Right() bool { return b&0x80 != 0 }

// Percent returns the balance percentage (0-100).
func (b LeftRightBalance) Percent() float64 { return float64(b & 0x7F) }

// LeftRightBalance100 is the higher-resolution uint16 variant: bit 15
// indicates the right side, bits 0-14 carry percentage * 100.
type LeftRightBalance100 uint16

// Right reports whether the value describes the right side.
func (b LeftRightBalance100) Right() bool { return b&0x8000 != 0 }

// Percent returns the balance percentage (0-100) at 0.01 resolution.
func (b LeftRightBalance100) Percent() float64 { return float64(b&0x7FFF) / 100 }

// enumName looks up a human name for an enumerated profile value,
// falling back to a generic "Unknown(n)" label for values the profile
// does not recognize. Unrecognized values are preserved, never treated
// as a decode failure.
func enumName(names map[uint64]string, raw uint64) string {
	if name, ok := names[raw]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", raw)
}

// Sport identifies the activity performed, e.g. running or cycling.
type Sport uint8

var sportNames = map[uint64]string{
	0: "generic", 1: "running", 2: "cycling", 3: "transition", 4: "fitness_equipment",
	5: "swimming", 6: "basketball", 7: "soccer", 8: "tennis", 9: "american_football",
	10: "training", 11: "walking", 12: "cross_country_skiing", 13: "alpine_skiing",
	14: "snowboarding", 15: "rowing", 16: "mountaineering", 17: "hiking", 18: "multisport",
	19: "paddling", 254: "all",
}

func (s Sport) String() string { return enumName(sportNames, uint64(s)) }

// SubSport refines Sport with a more specific activity.
type SubSport uint8

var subSportNames = map[uint64]string{
	0: "generic", 1: "treadmill", 2: "street", 3: "trail", 4: "track", 5: "spin",
	6: "indoor_cycling", 7: "road", 8: "mountain", 9: "downhill", 10: "recumbent",
	11: "cyclocross", 12: "hand_cycling", 13: "track_cycling", 14: "indoor_rowing",
	254: "all",
}

func (s SubSport) String() string { return enumName(subSportNames, uint64(s)) }

// Event identifies the kind of occurrence an Event message reports.
type Event uint8

var eventNames = map[uint64]string{
	0: "timer", 3: "workout", 4: "workout_step", 5: "power_down", 6: "power_up",
	7: "off_course", 8: "session", 9: "lap", 10: "course_point", 11: "battery",
	12: "virtual_partner_pace", 13: "hr_high_alert", 14: "hr_low_alert",
	15: "speed_high_alert", 16: "speed_low_alert", 17: "cad_high_alert",
	18: "cad_low_alert", 19: "power_high_alert", 20: "power_low_alert",
	21: "recovery_hr", 22: "battery_low", 23: "time_duration_alert",
	24: "distance_duration_alert", 25: "calorie_duration_alert", 36: "rear_gear_change",
	37: "front_gear_change",
}

func (e Event) String() string { return enumName(eventNames, uint64(e)) }

// EventType classifies whether an Event marks the start, stop, or
// ongoing occurrence of Event.
type EventType uint8

var eventTypeNames = map[uint64]string{
	0: "start", 1: "stop", 2: "consecutive_deprecated", 3: "marker",
	4: "stop_all", 5: "begin_deprecated", 6: "end_deprecated",
	7: "end_all_deprecated", 8: "stop_disable", 9: "stop_disable_all",
}

func (e EventType) String() string { return enumName(eventTypeNames, uint64(e)) }

// Manufacturer identifies the device manufacturer.
type Manufacturer uint16

var manufacturerNames = map[uint64]string{
	1: "garmin", 2: "garmin_fr405_antfs", 3: "zephyr", 4: "dayton",
	5: "idt", 6: "srm", 7: "quarq", 8: "ibike", 9: "saris",
	13: "shimano", 23: "wahoo_fitness", 32: "magellan", 255: "development",
}

func (m Manufacturer) String() string { return enumName(manufacturerNames, uint64(m)) }

// FileType identifies the kind of content a FIT file carries.
type FileType uint8

const (
	FileDevice          FileType = 1
	FileSettings        FileType = 2
	FileSport           FileType = 3
	FileActivity        FileType = 4
	FileWorkout         FileType = 5
	FileCourse          FileType = 6
	FileSchedules       FileType = 7
	FileWeight          FileType = 9
	FileTotals          FileType = 10
	FileGoals           FileType = 11
	FileBloodPressure   FileType = 14
	FileMonitoringA     FileType = 15
	FileActivitySummary FileType = 20
	FileMonitoringDaily FileType = 28
	FileMonitoringB     FileType = 32
	FileSegment         FileType = 34
	FileSegmentList     FileType = 35
	FileInvalid         FileType = 0xFF
)

var fileTypeNames = map[uint64]string{
	1: "device", 2: "settings", 3: "sport", 4: "activity", 5: "workout",
	6: "course", 7: "schedules", 9: "weight", 10: "totals", 11: "goals",
	14: "blood_pressure", 15: "monitoring_a", 20: "activity_summary",
	28: "monitoring_daily", 32: "monitoring_b", 34: "segment", 35: "segment_list",
	0xFF: "invalid",
}

func (t FileType) String() string { return enumName(fileTypeNames, uint64(t)) }

// Intensity classifies a Lap or WorkoutStep as active, rest, warmup, or
// cooldown.
type Intensity uint8

var intensityNames = map[uint64]string{0: "active", 1: "rest", 2: "warmup", 3: "cooldown"}

func (i Intensity) String() string { return enumName(intensityNames, uint64(i)) }

// Sex is a biological sex field used by UserProfile-style messages.
type Sex uint8

var sexNames = map[uint64]string{0: "female", 1: "male"}

func (s Sex) String() string { return enumName(sexNames, uint64(s)) }

// DisplayMeasure selects metric or statute unit display.
type DisplayMeasure uint8

var displayMeasureNames = map[uint64]string{0: "metric", 1: "statute"}

func (d DisplayMeasure) String() string { return enumName(displayMeasureNames, uint64(d)) }

// BatteryStatus reports a sensor's power state.
type BatteryStatus uint8

var batteryStatusNames = map[uint64]string{
	1: "new", 2: "good", 3: "ok", 4: "low", 5: "critical", 6: "charging", 7: "unknown",
}

func (b BatteryStatus) String() string { return enumName(batteryStatusNames, uint64(b)) }
