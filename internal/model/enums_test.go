package model

import "testing"

func TestEnumLabels(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"incoming", CallIncoming.String(), "Incoming"},
		{"answered externally", CallAnsweredExternally.String(), "Answered Externally"},
		{"presentation payphone", PresentationPayphone.String(), "Payphone"},
		{"block reason zero", NotBlocked.String(), "Not Blocked"},
		{"block reason contacts", BlockedNotInContacts.String(), "Not In Contacts"},
		{"number type none", NumberTypeNone.String(), ""},
		{"number type isdn", NumberTypeISDN.String(), "Isdn"},
		{"number type tty", NumberTypeTTYTDD.String(), "Tty Tdd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestFeatureLabels(t *testing.T) {
	tests := []struct {
		name string
		f    CallFeatures
		want string
	}{
		{"none", 0, ""},
		{"rtt", FeatureRTT, "RTT"},
		{"volte", FeatureVoLTE, "VoLTE"},
		{"wifi", FeatureWiFi, "WiFi"},
		{"hd", FeatureHDCall, "Hd Call"},
		{"combined", FeatureVideo | FeatureWiFi, "Video, WiFi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissedReasonString(t *testing.T) {
	m := UserMissedNoAnswer | UserMissedShortRing
	want := "User Missed No Answer, User Missed Short Ring"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := MissedReason(0).String(); got != "" {
		t.Errorf("zero value String() = %q, want empty", got)
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	if _, ok := ParseCallType(9); ok {
		t.Error("ParseCallType(9) accepted an undefined value")
	}
	if _, ok := ParseNumberPresentation(0); ok {
		t.Error("ParseNumberPresentation(0) accepted an undefined value")
	}
	if _, ok := ParseBlockReason(8); ok {
		t.Error("ParseBlockReason(8) accepted an undefined value")
	}
	if _, ok := ParseMissedReason(0x8); ok {
		t.Error("ParseMissedReason(0x8) accepted an undefined bit")
	}
	if _, ok := ParseCallFeatures(0x80); ok {
		t.Error("ParseCallFeatures(0x80) accepted an undefined bit")
	}
	if _, ok := ParseMissedReason(uint64(UserMissedNoAnswer | AutoMissedEmergencyCall)); !ok {
		t.Error("ParseMissedReason rejected a valid combination")
	}
}
