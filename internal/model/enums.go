package model

import "strings"

// Enum and flag values mirror the integer constants of the Android
// CallLog.Calls content provider, which is what the on-device exporter
// writes into the JSON dump. Every value carries a fixed display label;
// labels are looked up, never derived from identifier names at runtime.

// CallType is the direction/outcome of a call.
type CallType int

const (
	CallIncoming           CallType = 1
	CallOutgoing           CallType = 2
	CallMissed             CallType = 3
	CallVoicemail          CallType = 4
	CallRejected           CallType = 5
	CallBlocked            CallType = 6
	CallAnsweredExternally CallType = 7
)

var callTypeLabels = map[CallType]string{
	CallIncoming:           "Incoming",
	CallOutgoing:           "Outgoing",
	CallMissed:             "Missed",
	CallVoicemail:          "Voicemail",
	CallRejected:           "Rejected",
	CallBlocked:            "Blocked",
	CallAnsweredExternally: "Answered Externally",
}

// ParseCallType reports ok=false for integers outside the defined set.
func ParseCallType(v int64) (CallType, bool) {
	t := CallType(v)
	_, ok := callTypeLabels[t]
	return t, ok
}

func (t CallType) String() string { return callTypeLabels[t] }

// NumberType is the contact phone number category. Zero means no type
// was recorded and renders as an empty string.
type NumberType int

const (
	NumberTypeNone        NumberType = 0
	NumberTypeHome        NumberType = 1
	NumberTypeMobile      NumberType = 2
	NumberTypeWork        NumberType = 3
	NumberTypeFaxWork     NumberType = 4
	NumberTypeFaxHome     NumberType = 5
	NumberTypePager       NumberType = 6
	NumberTypeOther       NumberType = 7
	NumberTypeCallback    NumberType = 8
	NumberTypeCar         NumberType = 9
	NumberTypeCompanyMain NumberType = 10
	NumberTypeISDN        NumberType = 11
	NumberTypeMain        NumberType = 12
	NumberTypeOtherFax    NumberType = 13
	NumberTypeRadio       NumberType = 14
	NumberTypeTelex       NumberType = 15
	NumberTypeTTYTDD      NumberType = 16
	NumberTypeWorkMobile  NumberType = 17
	NumberTypeWorkPager   NumberType = 18
	NumberTypeAssistant   NumberType = 19
	NumberTypeMMS         NumberType = 20
)

var numberTypeLabels = map[NumberType]string{
	NumberTypeNone:        "",
	NumberTypeHome:        "Home",
	NumberTypeMobile:      "Mobile",
	NumberTypeWork:        "Work",
	NumberTypeFaxWork:     "Fax Work",
	NumberTypeFaxHome:     "Fax Home",
	NumberTypePager:       "Pager",
	NumberTypeOther:       "Other",
	NumberTypeCallback:    "Callback",
	NumberTypeCar:         "Car",
	NumberTypeCompanyMain: "Company Main",
	NumberTypeISDN:        "Isdn",
	NumberTypeMain:        "Main",
	NumberTypeOtherFax:    "Other Fax",
	NumberTypeRadio:       "Radio",
	NumberTypeTelex:       "Telex",
	NumberTypeTTYTDD:      "Tty Tdd",
	NumberTypeWorkMobile:  "Work Mobile",
	NumberTypeWorkPager:   "Work Pager",
	NumberTypeAssistant:   "Assistant",
	NumberTypeMMS:         "Mms",
}

func ParseNumberType(v int64) (NumberType, bool) {
	t := NumberType(v)
	_, ok := numberTypeLabels[t]
	return t, ok
}

func (t NumberType) String() string { return numberTypeLabels[t] }

// NumberPresentation describes how the caller's number was allowed to
// be shown to the recipient.
type NumberPresentation int

const (
	PresentationAllowed     NumberPresentation = 1
	PresentationRestricted  NumberPresentation = 2
	PresentationUnknown     NumberPresentation = 3
	PresentationPayphone    NumberPresentation = 4
	PresentationUnavailable NumberPresentation = 5
)

var presentationLabels = map[NumberPresentation]string{
	PresentationAllowed:     "Allowed",
	PresentationRestricted:  "Restricted",
	PresentationUnknown:     "Unknown",
	PresentationPayphone:    "Payphone",
	PresentationUnavailable: "Unavailable",
}

func ParseNumberPresentation(v int64) (NumberPresentation, bool) {
	p := NumberPresentation(v)
	_, ok := presentationLabels[p]
	return p, ok
}

func (p NumberPresentation) String() string { return presentationLabels[p] }

// BlockReason explains why a call was blocked, if it was.
type BlockReason int

const (
	NotBlocked               BlockReason = 0
	BlockedCallScreening     BlockReason = 1
	BlockedDirectToVoicemail BlockReason = 2
	BlockedNumber            BlockReason = 3
	BlockedUnknownNumber     BlockReason = 4
	BlockedRestrictedNumber  BlockReason = 5
	BlockedPayPhone          BlockReason = 6
	BlockedNotInContacts     BlockReason = 7
)

var blockReasonLabels = map[BlockReason]string{
	NotBlocked:               "Not Blocked",
	BlockedCallScreening:     "Call Screening Service",
	BlockedDirectToVoicemail: "Direct To Voicemail",
	BlockedNumber:            "Blocked Number",
	BlockedUnknownNumber:     "Unknown Number",
	BlockedRestrictedNumber:  "Restricted Number",
	BlockedPayPhone:          "Pay Phone",
	BlockedNotInContacts:     "Not In Contacts",
}

func ParseBlockReason(v int64) (BlockReason, bool) {
	r := BlockReason(v)
	_, ok := blockReasonLabels[r]
	return r, ok
}

func (r BlockReason) String() string { return blockReasonLabels[r] }

// flagLabel pairs one flag bit with its display label. Slices below are
// ordered by ascending bit value, which fixes the join order of combined
// labels.
type flagLabel struct {
	bit   uint64
	label string
}

// MissedReason is a set of independent flags explaining why a call was
// not answered. Zero means the call was not missed.
type MissedReason uint64

const (
	AutoMissedEmergencyCall    MissedReason = 0x1
	AutoMissedMaximumRinging   MissedReason = 0x2
	AutoMissedMaximumDialing   MissedReason = 0x4
	UserMissedNoAnswer         MissedReason = 0x10000
	UserMissedShortRing        MissedReason = 0x20000
	UserMissedDNDMode          MissedReason = 0x40000
	UserMissedLowRingVolume    MissedReason = 0x80000
	UserMissedNoVibrate        MissedReason = 0x100000
	UserMissedScreeningService MissedReason = 0x200000
	UserMissedFiltersTimeout   MissedReason = 0x400000
)

var missedReasonLabels = []flagLabel{
	{0x1, "Auto Missed Emergency Call"},
	{0x2, "Auto Missed Maximum Ringing"},
	{0x4, "Auto Missed Maximum Dialing"},
	{0x10000, "User Missed No Answer"},
	{0x20000, "User Missed Short Ring"},
	{0x40000, "User Missed Dnd Mode"},
	{0x80000, "User Missed Low Ring Volume"},
	{0x100000, "User Missed No Vibrate"},
	{0x200000, "User Missed Call Screening Service Silenced"},
	{0x400000, "User Missed Call Filters Timeout"},
}

// ParseMissedReason reports ok=false when v carries a bit that is not a
// defined missed-reason flag.
func ParseMissedReason(v uint64) (MissedReason, bool) {
	return MissedReason(v), v&^flagMask(missedReasonLabels) == 0
}

func (m MissedReason) String() string { return flagString(uint64(m), missedReasonLabels) }

// CallFeatures is the set of call feature flags (video, WiFi, RTT, ...).
type CallFeatures uint64

const (
	FeatureVideo            CallFeatures = 0x1
	FeaturePulledExternally CallFeatures = 0x2
	FeatureHDCall           CallFeatures = 0x4
	FeatureWiFi             CallFeatures = 0x8
	FeatureAssistedDialing  CallFeatures = 0x10
	FeatureRTT              CallFeatures = 0x20
	FeatureVoLTE            CallFeatures = 0x40
)

var callFeatureLabels = []flagLabel{
	{0x1, "Video"},
	{0x2, "Pulled Externally"},
	{0x4, "Hd Call"},
	{0x8, "WiFi"},
	{0x10, "Assisted Dialing Used"},
	{0x20, "RTT"},
	{0x40, "VoLTE"},
}

func ParseCallFeatures(v uint64) (CallFeatures, bool) {
	return CallFeatures(v), v&^flagMask(callFeatureLabels) == 0
}

func (f CallFeatures) String() string { return flagString(uint64(f), callFeatureLabels) }

func flagMask(labels []flagLabel) uint64 {
	var mask uint64
	for _, l := range labels {
		mask |= l.bit
	}
	return mask
}

// flagString joins the labels of all set bits with ", ". Zero renders
// as the empty string.
func flagString(v uint64, labels []flagLabel) string {
	if v == 0 {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, l := range labels {
		if v&l.bit != 0 {
			parts = append(parts, l.label)
		}
	}
	return strings.Join(parts, ", ")
}
