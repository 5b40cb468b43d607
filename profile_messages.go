package fit

// This file is the profile message table: for each known global message
// number, the field definition numbers it recognizes and how to turn the
// matching raw bytes into a semantic value. The table is data of the
// same shape as the FIT SDK's machine-readable profile document,
// covering a representative slice of the ~80-message, hundreds-of-field
// profile rather than an exhaustive transcription.

// profileKind selects which decoder interprets a field's raw bytes once
// the base type has produced a scalar value.
type profileKind int

const (
	kindBase profileKind = iota
	kindSport
	kindSubSport
	kindEvent
	kindEventType
	kindManufacturer
	kindFileType
	kindIntensity
	kindSex
	kindDisplayMeasure
	kindBatteryStatus
	kindDateTime
	kindLocalDateTime
	kindMessageIndex
	kindLeftRightBalance
	kindLeftRightBalance100
)

// fieldSpec is one profile field: its name, wire base type, optional
// profile-type interpretation, and scale/offset/units annotations.
type fieldSpec struct {
	Name   string
	Base   BaseType
	Kind   profileKind
	Scale  float64
	Offset float64
	Units  string
}

// messageSpec is the per-message field table plus a display name.
type messageSpec struct {
	Name   string
	Fields map[byte]fieldSpec
}

// profile is the (global message number) -> messageSpec registry.
var profile = map[MesgNum]messageSpec{
	MesgNumFileId: {
		Name: "file_id",
		Fields: map[byte]fieldSpec{
			0: {Name: "type", Base: BaseTypeEnum, Kind: kindFileType, Scale: 1},
			1: {Name: "manufacturer", Base: BaseTypeUint16, Kind: kindManufacturer, Scale: 1},
			2: {Name: "product", Base: BaseTypeUint16, Scale: 1},
			3: {Name: "serial_number", Base: BaseTypeUint32z, Scale: 1},
			4: {Name: "time_created", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			5: {Name: "number", Base: BaseTypeUint16, Scale: 1},
			8: {Name: "product_name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumFileCreator: {
		Name: "file_creator",
		Fields: map[byte]fieldSpec{
			0: {Name: "software_version", Base: BaseTypeUint16, Scale: 1},
			1: {Name: "hardware_version", Base: BaseTypeUint8, Scale: 1},
		},
	},
	MesgNumDeviceInfo: {
		Name: "device_info",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "device_index", Base: BaseTypeUint8, Scale: 1},
			1:   {Name: "device_type", Base: BaseTypeUint8, Scale: 1},
			2:   {Name: "manufacturer", Base: BaseTypeUint16, Kind: kindManufacturer, Scale: 1},
			3:   {Name: "serial_number", Base: BaseTypeUint32z, Scale: 1},
			4:   {Name: "product", Base: BaseTypeUint16, Scale: 1},
			5:   {Name: "software_version", Base: BaseTypeUint16, Scale: 100},
			6:   {Name: "hardware_version", Base: BaseTypeUint8, Scale: 1},
			7:   {Name: "cum_operating_time", Base: BaseTypeUint32, Scale: 1, Units: "s"},
			10:  {Name: "battery_voltage", Base: BaseTypeUint16, Scale: 256, Units: "V"},
			11:  {Name: "battery_status", Base: BaseTypeUint8, Kind: kindBatteryStatus, Scale: 1},
			27:  {Name: "descriptor", Base: BaseTypeString, Scale: 1},
			32:  {Name: "ant_transmission_type", Base: BaseTypeUint8z, Scale: 1},
			33:  {Name: "ant_device_number", Base: BaseTypeUint16z, Scale: 1},
		},
	},
	MesgNumEvent: {
		Name: "event",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "event", Base: BaseTypeEnum, Kind: kindEvent, Scale: 1},
			1:   {Name: "event_type", Base: BaseTypeEnum, Kind: kindEventType, Scale: 1},
			2:   {Name: "data16", Base: BaseTypeUint16, Scale: 1},
			3:   {Name: "data", Base: BaseTypeUint32, Scale: 1},
			4:   {Name: "event_group", Base: BaseTypeUint8, Scale: 1},
			7:   {Name: "score", Base: BaseTypeUint16, Scale: 1},
			8:   {Name: "opponent_score", Base: BaseTypeUint16, Scale: 1},
			13:  {Name: "device_index", Base: BaseTypeUint8z, Scale: 1},
		},
	},
	MesgNumRecord: {
		Name: "record",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "position_lat", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			1:   {Name: "position_long", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			2:   {Name: "altitude", Base: BaseTypeUint16, Scale: 5, Offset: 500, Units: "m"},
			3:   {Name: "heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			4:   {Name: "cadence", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			5:   {Name: "distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			6:   {Name: "speed", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			7:   {Name: "power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			13:  {Name: "temperature", Base: BaseTypeSint8, Scale: 1, Units: "C"},
			29:  {Name: "accumulated_power", Base: BaseTypeUint32, Scale: 1, Units: "watts"},
			30:  {Name: "left_right_balance", Base: BaseTypeUint8, Kind: kindLeftRightBalance, Scale: 1},
			31:  {Name: "gps_accuracy", Base: BaseTypeUint8, Scale: 1, Units: "m"},
			39:  {Name: "vertical_oscillation", Base: BaseTypeUint16, Scale: 10, Units: "mm"},
			41:  {Name: "stance_time_percent", Base: BaseTypeUint16, Scale: 100, Units: "percent"},
		},
	},
	MesgNumLap: {
		Name: "lap",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			2:   {Name: "start_time", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			7:   {Name: "total_elapsed_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			8:   {Name: "total_timer_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			9:   {Name: "total_distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			11:  {Name: "total_calories", Base: BaseTypeUint16, Scale: 1, Units: "kcal"},
			13:  {Name: "avg_speed", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			14:  {Name: "max_speed", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			15:  {Name: "avg_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			16:  {Name: "max_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			17:  {Name: "avg_cadence", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			18:  {Name: "max_cadence", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			19:  {Name: "avg_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			20:  {Name: "max_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			24:  {Name: "intensity", Base: BaseTypeEnum, Kind: kindIntensity, Scale: 1},
			26:  {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
		},
	},
	MesgNumSession: {
		Name: "session",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			2:   {Name: "start_time", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			5:   {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			6:   {Name: "sub_sport", Base: BaseTypeEnum, Kind: kindSubSport, Scale: 1},
			7:   {Name: "total_elapsed_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			8:   {Name: "total_timer_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			9:   {Name: "total_distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			11:  {Name: "total_calories", Base: BaseTypeUint16, Scale: 1, Units: "kcal"},
			14:  {Name: "avg_speed", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			15:  {Name: "max_speed", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			16:  {Name: "avg_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			17:  {Name: "max_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			18:  {Name: "avg_cadence", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			19:  {Name: "max_cadence", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			20:  {Name: "avg_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			21:  {Name: "max_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			49:  {Name: "total_training_effect", Base: BaseTypeUint8, Scale: 10},
		},
	},
	MesgNumActivity: {
		Name: "activity",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "total_timer_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			1:   {Name: "num_sessions", Base: BaseTypeUint16, Scale: 1},
			2:   {Name: "type", Base: BaseTypeEnum, Scale: 1},
			3:   {Name: "event", Base: BaseTypeEnum, Kind: kindEvent, Scale: 1},
			4:   {Name: "event_type", Base: BaseTypeEnum, Kind: kindEventType, Scale: 1},
			5:   {Name: "local_timestamp", Base: BaseTypeUint32, Kind: kindLocalDateTime, Scale: 1},
			6:   {Name: "event_group", Base: BaseTypeUint8, Scale: 1},
		},
	},
	MesgNumSport: {
		Name: "sport",
		Fields: map[byte]fieldSpec{
			0: {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			1: {Name: "sub_sport", Base: BaseTypeEnum, Kind: kindSubSport, Scale: 1},
			3: {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumWorkout: {
		Name: "workout",
		Fields: map[byte]fieldSpec{
			4: {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			5: {Name: "capabilities", Base: BaseTypeUint32, Scale: 1},
			6: {Name: "num_valid_steps", Base: BaseTypeUint16, Scale: 1},
			8: {Name: "wkt_name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumWorkoutStep: {
		Name: "workout_step",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "wkt_step_name", Base: BaseTypeString, Scale: 1},
			1:   {Name: "duration_type", Base: BaseTypeEnum, Scale: 1},
			2:   {Name: "duration_value", Base: BaseTypeUint32, Scale: 1},
			3:   {Name: "target_type", Base: BaseTypeEnum, Scale: 1},
			4:   {Name: "target_value", Base: BaseTypeUint32, Scale: 1},
			7:   {Name: "intensity", Base: BaseTypeEnum, Kind: kindIntensity, Scale: 1},
		},
	},
	MesgNumSchedule: {
		Name: "schedule",
		Fields: map[byte]fieldSpec{
			0: {Name: "manufacturer", Base: BaseTypeUint16, Kind: kindManufacturer, Scale: 1},
			1: {Name: "product", Base: BaseTypeUint16, Scale: 1},
			2: {Name: "serial_number", Base: BaseTypeUint32z, Scale: 1},
			3: {Name: "time_created", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			4: {Name: "completed", Base: BaseTypeEnum, Scale: 1},
			5: {Name: "type", Base: BaseTypeEnum, Scale: 1},
			6: {Name: "scheduled_time", Base: BaseTypeUint32, Kind: kindLocalDateTime, Scale: 1},
		},
	},
	MesgNumWeightScale: {
		Name: "weight_scale",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "weight", Base: BaseTypeUint16, Scale: 100, Units: "kg"},
			1:   {Name: "percent_fat", Base: BaseTypeUint16, Scale: 100, Units: "percent"},
			2:   {Name: "percent_hydration", Base: BaseTypeUint16, Scale: 100, Units: "percent"},
			5:   {Name: "muscle_mass", Base: BaseTypeUint16, Scale: 100, Units: "kg"},
			9:   {Name: "active_met", Base: BaseTypeUint16, Scale: 4, Units: "kcal/day"},
			10:  {Name: "metabolic_age", Base: BaseTypeUint8, Scale: 1},
			12:  {Name: "user_profile_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
		},
	},
	MesgNumGoal: {
		Name: "goal",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			1:   {Name: "sub_sport", Base: BaseTypeEnum, Kind: kindSubSport, Scale: 1},
			2:   {Name: "start_date", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			3:   {Name: "end_date", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			5:   {Name: "value", Base: BaseTypeUint32, Scale: 1},
			7:   {Name: "target_value", Base: BaseTypeUint32, Scale: 1},
			10:  {Name: "enabled", Base: BaseTypeEnum, Scale: 1},
		},
	},
	MesgNumBloodPressure: {
		Name: "blood_pressure",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "systolic_pressure", Base: BaseTypeUint16, Scale: 1, Units: "mmHg"},
			1:   {Name: "diastolic_pressure", Base: BaseTypeUint16, Scale: 1, Units: "mmHg"},
			2:   {Name: "mean_arterial_pressure", Base: BaseTypeUint16, Scale: 1, Units: "mmHg"},
			6:   {Name: "heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			9:   {Name: "user_profile_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
		},
	},
	MesgNumMonitoring: {
		Name: "monitoring",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "device_index", Base: BaseTypeUint8, Scale: 1},
			1:   {Name: "calories", Base: BaseTypeUint16, Scale: 1, Units: "kcal"},
			2:   {Name: "distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			3:   {Name: "cycles", Base: BaseTypeUint32, Scale: 2, Units: "cycles"},
			19:  {Name: "active_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			24:  {Name: "ascent", Base: BaseTypeUint32, Scale: 1000, Units: "m"},
			25:  {Name: "descent", Base: BaseTypeUint32, Scale: 1000, Units: "m"},
		},
	},
	MesgNumMonitoringInfo: {
		Name: "monitoring_info",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "local_timestamp", Base: BaseTypeUint32, Kind: kindLocalDateTime, Scale: 1},
			5:   {Name: "resting_metabolic_rate", Base: BaseTypeUint16, Scale: 1, Units: "kcal/day"},
		},
	},
	MesgNumSegmentLap: {
		Name: "segment_lap",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			2:   {Name: "start_time", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			7:   {Name: "total_elapsed_time", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			9:   {Name: "total_distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
		},
	},
	MesgNumSegmentId: {
		Name: "segment_id",
		Fields: map[byte]fieldSpec{
			0: {Name: "name", Base: BaseTypeString, Scale: 1},
			1: {Name: "uuid", Base: BaseTypeString, Scale: 1},
			2: {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
		},
	},
	MesgNumSegmentPoint: {
		Name: "segment_point",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			1:   {Name: "position_lat", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			2:   {Name: "position_long", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			3:   {Name: "distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			4:   {Name: "altitude", Base: BaseTypeUint16, Scale: 5, Offset: 500, Units: "m"},
		},
	},
	MesgNumCapabilities: {
		Name: "capabilities",
		Fields: map[byte]fieldSpec{
			0:  {Name: "languages", Base: BaseTypeUint8z, Scale: 1},
			1:  {Name: "sports", Base: BaseTypeUint8z, Scale: 1},
			21: {Name: "workouts_supported", Base: BaseTypeUint32z, Scale: 1},
			23: {Name: "connectivity_supported", Base: BaseTypeUint32z, Scale: 1},
		},
	},
	MesgNumDeviceSettings: {
		Name: "device_settings",
		Fields: map[byte]fieldSpec{
			0: {Name: "active_time_zone", Base: BaseTypeUint8, Scale: 1},
			1: {Name: "utc_offset", Base: BaseTypeUint32, Scale: 1},
			2: {Name: "time_offset", Base: BaseTypeUint32, Scale: 1, Units: "s"},
			5: {Name: "time_zone_offset", Base: BaseTypeSint8, Scale: 4, Units: "hr"},
		},
	},
	MesgNumUserProfile: {
		Name: "user_profile",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "friendly_name", Base: BaseTypeString, Scale: 1},
			1:   {Name: "gender", Base: BaseTypeEnum, Kind: kindSex, Scale: 1},
			2:   {Name: "age", Base: BaseTypeUint8, Scale: 1, Units: "years"},
			3:   {Name: "height", Base: BaseTypeUint8, Scale: 100, Units: "m"},
			4:   {Name: "weight", Base: BaseTypeUint16, Scale: 10, Units: "kg"},
			5:   {Name: "language", Base: BaseTypeEnum, Scale: 1},
			6:   {Name: "elev_setting", Base: BaseTypeEnum, Kind: kindDisplayMeasure, Scale: 1},
			7:   {Name: "weight_setting", Base: BaseTypeEnum, Kind: kindDisplayMeasure, Scale: 1},
			8:   {Name: "resting_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			11:  {Name: "default_max_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
		},
	},
	MesgNumZonesTarget: {
		Name: "zones_target",
		Fields: map[byte]fieldSpec{
			1: {Name: "max_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			2: {Name: "threshold_heart_rate", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			3: {Name: "functional_threshold_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			5: {Name: "hr_calc_type", Base: BaseTypeEnum, Scale: 1},
			7: {Name: "pwr_calc_type", Base: BaseTypeEnum, Scale: 1},
		},
	},
	MesgNumHrZone: {
		Name: "hr_zone",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			1:   {Name: "high_bpm", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			2:   {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumPowerZone: {
		Name: "power_zone",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			1:   {Name: "high_value", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
			2:   {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumSpeedZone: {
		Name: "speed_zone",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "high_value", Base: BaseTypeUint16, Scale: 1000, Units: "m/s"},
			1:   {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumCadenceZone: {
		Name: "cadence_zone",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "high_value", Base: BaseTypeUint8, Scale: 1, Units: "rpm"},
			1:   {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumCourse: {
		Name: "course",
		Fields: map[byte]fieldSpec{
			4: {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			5: {Name: "name", Base: BaseTypeString, Scale: 1},
			6: {Name: "capabilities", Base: BaseTypeUint32z, Scale: 1},
			7: {Name: "sub_sport", Base: BaseTypeEnum, Kind: kindSubSport, Scale: 1},
		},
	},
	MesgNumCoursePoint: {
		Name: "course_point",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			1:   {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			2:   {Name: "position_lat", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			3:   {Name: "position_long", Base: BaseTypeSint32, Scale: 1, Units: "semicircles"},
			4:   {Name: "distance", Base: BaseTypeUint32, Scale: 100, Units: "m"},
			5:   {Name: "type", Base: BaseTypeEnum, Scale: 1},
			6:   {Name: "name", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumTotals: {
		Name: "totals",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			0:   {Name: "timer_time", Base: BaseTypeUint32, Scale: 1, Units: "s"},
			1:   {Name: "distance", Base: BaseTypeUint32, Scale: 1, Units: "m"},
			2:   {Name: "calories", Base: BaseTypeUint32, Scale: 1, Units: "kcal"},
			3:   {Name: "sport", Base: BaseTypeEnum, Kind: kindSport, Scale: 1},
			4:   {Name: "elapsed_time", Base: BaseTypeUint32, Scale: 1, Units: "s"},
			5:   {Name: "sessions", Base: BaseTypeUint16, Scale: 1},
			6:   {Name: "active_time", Base: BaseTypeUint32, Scale: 1, Units: "s"},
		},
	},
	MesgNumSoftware: {
		Name: "software",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			3:   {Name: "version", Base: BaseTypeUint16, Scale: 100},
			5:   {Name: "part_number", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumTrainingFile: {
		Name: "training_file",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "type", Base: BaseTypeEnum, Kind: kindFileType, Scale: 1},
			1:   {Name: "manufacturer", Base: BaseTypeUint16, Kind: kindManufacturer, Scale: 1},
			2:   {Name: "product", Base: BaseTypeUint16, Scale: 1},
			3:   {Name: "serial_number", Base: BaseTypeUint32z, Scale: 1},
			4:   {Name: "time_created", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
		},
	},
	MesgNumHrv: {
		Name: "hrv",
		Fields: map[byte]fieldSpec{
			0: {Name: "time", Base: BaseTypeUint16, Scale: 1000, Units: "s"},
		},
	},
	MesgNumSegmentFile: {
		Name: "segment_file",
		Fields: map[byte]fieldSpec{
			254: {Name: "message_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			1:   {Name: "file_uuid", Base: BaseTypeString, Scale: 1},
			3:   {Name: "user_profile_primary_key", Base: BaseTypeUint32, Scale: 1},
			4:   {Name: "leader_type", Base: BaseTypeEnum, Scale: 1},
			8:   {Name: "leader_activity_id_string", Base: BaseTypeString, Scale: 1},
		},
	},
	MesgNumTimeInZone: {
		Name: "time_in_zone",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "reference_mesg", Base: BaseTypeUint16, Scale: 1},
			1:   {Name: "reference_index", Base: BaseTypeUint16, Kind: kindMessageIndex, Scale: 1},
			2:   {Name: "time_in_hr_zone", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			3:   {Name: "time_in_speed_zone", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			4:   {Name: "time_in_cadence_zone", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			5:   {Name: "time_in_power_zone", Base: BaseTypeUint32, Scale: 1000, Units: "s"},
			6:   {Name: "hr_zone_high_boundary", Base: BaseTypeUint8, Scale: 1, Units: "bpm"},
			11:  {Name: "functional_threshold_power", Base: BaseTypeUint16, Scale: 1, Units: "watts"},
		},
	},
	MesgNumHrvStatusSummary: {
		Name: "hrv_status_summary",
		Fields: map[byte]fieldSpec{
			253: {Name: "timestamp", Base: BaseTypeUint32, Kind: kindDateTime, Scale: 1},
			0:   {Name: "weekly_average", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			1:   {Name: "last_night_average", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			2:   {Name: "last_night_5_min_high", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			3:   {Name: "baseline_low_upper", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			4:   {Name: "baseline_balanced_lower", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			5:   {Name: "baseline_balanced_upper", Base: BaseTypeUint16, Scale: 128, Units: "ms"},
			6:   {Name: "status", Base: BaseTypeEnum, Scale: 1},
		},
	},
	MesgNumFieldDescription: {
		Name: "field_description",
		Fields: map[byte]fieldSpec{
			0:  {Name: "developer_data_index", Base: BaseTypeUint8, Scale: 1},
			1:  {Name: "field_definition_number", Base: BaseTypeUint8, Scale: 1},
			2:  {Name: "fit_base_type_id", Base: BaseTypeUint8, Scale: 1},
			3:  {Name: "field_name", Base: BaseTypeString, Scale: 1},
			4:  {Name: "array", Base: BaseTypeUint8, Scale: 1},
			6:  {Name: "scale", Base: BaseTypeUint8, Scale: 1},
			7:  {Name: "offset", Base: BaseTypeSint8, Scale: 1},
			8:  {Name: "units", Base: BaseTypeString, Scale: 1},
			13: {Name: "native_mesg_num", Base: BaseTypeUint16, Scale: 1},
			14: {Name: "native_field_num", Base: BaseTypeUint8, Scale: 1},
		},
	},
	MesgNumDeveloperDataId: {
		Name: "developer_data_id",
		Fields: map[byte]fieldSpec{
			0: {Name: "developer_id", Base: BaseTypeByte, Scale: 1},
			1: {Name: "application_id", Base: BaseTypeByte, Scale: 1},
			2: {Name: "manufacturer_id", Base: BaseTypeUint16, Kind: kindManufacturer, Scale: 1},
			3: {Name: "developer_data_index", Base: BaseTypeUint8, Scale: 1},
			4: {Name: "application_version", Base: BaseTypeUint32, Scale: 1},
		},
	},
}

// getMessageSpec resolves a message's field table by global message
// number.
func getMessageSpec(num MesgNum) (messageSpec, bool) {
	spec, ok := profile[num]
	return spec, ok
}

// getFieldSpec resolves one field's spec within a known message.
func getFieldSpec(num MesgNum, fieldNum byte) (fieldSpec, bool) {
	spec, ok := profile[num]
	if !ok {
		return fieldSpec{}, false
	}
	f, ok := spec.Fields[fieldNum]
	return f, ok
}
