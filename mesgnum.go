package fit

import "fmt"

// MesgNum is a FIT global message number, the tag that identifies a
// message's semantic type independent of any local message slot.
type MesgNum uint16

// A representative subset of the ~80 global message numbers defined by
// the FIT profile. Numbers not listed here are still decoded: they
// surface as Message{Known: false} with their raw Num preserved.
const (
	MesgNumFileId            MesgNum = 0
	MesgNumCapabilities      MesgNum = 1
	MesgNumDeviceSettings    MesgNum = 2
	MesgNumUserProfile       MesgNum = 3
	MesgNumZonesTarget       MesgNum = 7
	MesgNumHrZone            MesgNum = 8
	MesgNumPowerZone         MesgNum = 9
	MesgNumSport             MesgNum = 12
	MesgNumGoal              MesgNum = 15
	MesgNumSession           MesgNum = 18
	MesgNumLap               MesgNum = 19
	MesgNumRecord            MesgNum = 20
	MesgNumEvent             MesgNum = 21
	MesgNumDeviceInfo        MesgNum = 23
	MesgNumWorkout           MesgNum = 26
	MesgNumWorkoutStep       MesgNum = 27
	MesgNumSchedule          MesgNum = 28
	MesgNumWeightScale       MesgNum = 30
	MesgNumCourse            MesgNum = 31
	MesgNumCoursePoint       MesgNum = 32
	MesgNumTotals            MesgNum = 33
	MesgNumActivity          MesgNum = 34
	MesgNumSoftware          MesgNum = 35
	MesgNumFileCreator       MesgNum = 49
	MesgNumBloodPressure     MesgNum = 51
	MesgNumSpeedZone         MesgNum = 53
	MesgNumMonitoring        MesgNum = 55
	MesgNumTrainingFile      MesgNum = 72
	MesgNumHrv               MesgNum = 78
	MesgNumMonitoringInfo    MesgNum = 103
	MesgNumCadenceZone       MesgNum = 131
	MesgNumSegmentLap        MesgNum = 142
	MesgNumSegmentId         MesgNum = 148
	MesgNumSegmentPoint      MesgNum = 150
	MesgNumSegmentFile       MesgNum = 151
	MesgNumFieldDescription  MesgNum = 206
	MesgNumDeveloperDataId   MesgNum = 207
	MesgNumTimeInZone        MesgNum = 216
	MesgNumHrvStatusSummary  MesgNum = 370
	MesgNumInvalid           MesgNum = 0xFFFF
)

var mesgNumNames = map[MesgNum]string{
	MesgNumFileId:           "file_id",
	MesgNumCapabilities:     "capabilities",
	MesgNumDeviceSettings:   "device_settings",
	MesgNumUserProfile:      "user_profile",
	MesgNumZonesTarget:      "zones_target",
	MesgNumHrZone:           "hr_zone",
	MesgNumPowerZone:        "power_zone",
	MesgNumSport:            "sport",
	MesgNumGoal:             "goal",
	MesgNumSession:          "session",
	MesgNumLap:              "lap",
	MesgNumRecord:           "record",
	MesgNumEvent:            "event",
	MesgNumDeviceInfo:       "device_info",
	MesgNumWorkout:          "workout",
	MesgNumWorkoutStep:      "workout_step",
	MesgNumSchedule:         "schedule",
	MesgNumWeightScale:      "weight_scale",
	MesgNumCourse:           "course",
	MesgNumCoursePoint:      "course_point",
	MesgNumTotals:           "totals",
	MesgNumActivity:         "activity",
	MesgNumSoftware:         "software",
	MesgNumFileCreator:      "file_creator",
	MesgNumBloodPressure:    "blood_pressure",
	MesgNumSpeedZone:        "speed_zone",
	MesgNumMonitoring:       "monitoring",
	MesgNumTrainingFile:     "training_file",
	MesgNumHrv:              "hrv",
	MesgNumFieldDescription: "field_description",
	MesgNumDeveloperDataId:  "developer_data_id",
	MesgNumMonitoringInfo:   "monitoring_info",
	MesgNumCadenceZone:      "cadence_zone",
	MesgNumSegmentLap:       "segment_lap",
	MesgNumSegmentId:        "segment_id",
	MesgNumSegmentPoint:     "segment_point",
	MesgNumSegmentFile:      "segment_file",
	MesgNumTimeInZone:       "time_in_zone",
	MesgNumHrvStatusSummary: "hrv_status_summary",
	MesgNumInvalid:          "invalid",
}

func (m MesgNum) String() string {
	if name, ok := mesgNumNames[m]; ok {
		return name
	}
	return fmt.Sprintf("unknown_mesg(%d)", uint16(m))
}

// fieldNumTimeStamp is the field definition number shared by every
// message's optional timestamp field (253); the compressed-timestamp
// path looks a message's own field up by this number.
const fieldNumTimeStamp = 253
