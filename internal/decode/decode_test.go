package decode

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/model"
)

var testDate = time.Date(2024, 3, 5, 11, 30, 15, 0, time.UTC)

// baseCall returns a raw export object with every required key, encoded
// the way the Android exporter writes it (everything stringified).
func baseCall() map[string]any {
	ms := strconv.FormatInt(testDate.UnixMilli(), 10)
	return map[string]any{
		"_id":                         "541",
		"date":                        ms,
		"type":                        "1",
		"presentation":                "1",
		"duration":                    "62",
		"missed_reason":               "0",
		"block_reason":                "0",
		"features":                    "0",
		"number":                      "+436641234567",
		"via_number":                  "",
		"post_dial_digits":            "",
		"countryiso":                  "AT",
		"phone_account_hidden":        "0",
		"phone_account_address":       "",
		"subscription_component_name": "com.android.phone/com.android.services.telephony.TelephonyConnectionService",
		"subscription_id":             "1",
		"is_read":                     "1",
		"new":                         "0",
		"add_for_all_users":           "1",
		"is_call_log_phone_account_migration_pending": "0",
		"transcription_state":                         "0",
		"photo_id":                                    "0",
		"priority":                                    "0",
		"last_modified":                               ms,
	}
}

func mustDecode(t *testing.T, doc any) []model.CallRecord {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	calls, err := Decode(b, time.UTC)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return calls
}

func decodeErr(t *testing.T, doc any) *DecodeError {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Decode(b, time.UTC)
	if err == nil {
		t.Fatal("Decode succeeded, want error")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DecodeError", err)
	}
	return de
}

func TestDecodeSingleObject(t *testing.T) {
	obj := baseCall()
	obj["name"] = "Alice"
	obj["display_name"] = "Alice Example"
	obj["numbertype"] = "2"

	calls := mustDecode(t, obj)
	if len(calls) != 1 {
		t.Fatalf("got %d records, want 1", len(calls))
	}
	c := calls[0]
	if c.ID != 541 {
		t.Errorf("ID = %d, want 541", c.ID)
	}
	if !c.Date.Equal(testDate) {
		t.Errorf("Date = %v, want %v", c.Date, testDate)
	}
	if c.Type != model.CallIncoming {
		t.Errorf("Type = %v, want incoming", c.Type)
	}
	if c.Duration != 62*time.Second {
		t.Errorf("Duration = %v, want 62s", c.Duration)
	}
	if !c.IsRead || c.New {
		t.Errorf("IsRead/New = %v/%v, want true/false", c.IsRead, c.New)
	}
	if c.NumberType != model.NumberTypeMobile {
		t.Errorf("NumberType = %v, want mobile", c.NumberType)
	}
	if c.DisplayName != "Alice Example" {
		t.Errorf("DisplayName = %q", c.DisplayName)
	}
}

func TestDecodeNativeNumbersAndBools(t *testing.T) {
	obj := baseCall()
	obj["date"] = testDate.UnixMilli()
	obj["duration"] = 62
	obj["is_read"] = true
	obj["subscription_id"] = 1

	c := mustDecode(t, obj)[0]
	if !c.Date.Equal(testDate) {
		t.Errorf("Date = %v, want %v", c.Date, testDate)
	}
	if c.Duration != 62*time.Second {
		t.Errorf("Duration = %v, want 62s", c.Duration)
	}
	if !c.IsRead {
		t.Error("IsRead = false, want true")
	}
}

func TestDecodeBoolStrings(t *testing.T) {
	tests := []struct {
		raw  any
		want bool
	}{
		{"1", true},
		{"0", false},
		{"true", false}, // only the literal "1" is true
		{true, true},
	}
	for _, tt := range tests {
		obj := baseCall()
		obj["new"] = tt.raw
		if got := mustDecode(t, obj)[0].New; got != tt.want {
			t.Errorf("new=%v decoded to %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDecodeCombinedMissedReason(t *testing.T) {
	obj := baseCall()
	combined := model.UserMissedNoAnswer | model.UserMissedShortRing
	obj["missed_reason"] = strconv.FormatUint(uint64(combined), 10)

	c := mustDecode(t, obj)[0]
	if c.MissedReason != combined {
		t.Fatalf("MissedReason = %#x, want %#x", uint64(c.MissedReason), uint64(combined))
	}
	s := c.MissedReason.String()
	if !strings.Contains(s, "User Missed No Answer") || !strings.Contains(s, "User Missed Short Ring") {
		t.Errorf("label %q is missing a flag name", s)
	}
}

func TestDecodeUnknownEnum(t *testing.T) {
	obj := baseCall()
	obj["type"] = "9"
	de := decodeErr(t, obj)
	if de.Field != "type" {
		t.Errorf("Field = %q, want type", de.Field)
	}
}

func TestDecodeUnknownFlagBit(t *testing.T) {
	obj := baseCall()
	obj["missed_reason"] = "8" // 0x8 is not a defined flag
	de := decodeErr(t, obj)
	if de.Field != "missed_reason" {
		t.Errorf("Field = %q, want missed_reason", de.Field)
	}
}

func TestDecodeMissingRequiredField(t *testing.T) {
	obj := baseCall()
	delete(obj, "duration")
	de := decodeErr(t, obj)
	if de.Field != "duration" {
		t.Errorf("Field = %q, want duration", de.Field)
	}
}

func TestDecodeNegativeDuration(t *testing.T) {
	obj := baseCall()
	obj["duration"] = "-5"
	if de := decodeErr(t, obj); de.Field != "duration" {
		t.Errorf("Field = %q, want duration", de.Field)
	}
}

func TestDecodeOptionalDefaults(t *testing.T) {
	c := mustDecode(t, baseCall())[0]
	if c.DisplayName != "" || c.Name != "" || c.GeocodedLocation != "" {
		t.Error("optional strings should default to empty")
	}
	if c.NumberType != model.NumberTypeNone {
		t.Errorf("NumberType = %v, want none", c.NumberType)
	}
	if c.Subject != nil || c.DataUsage != nil || c.LookupURI != nil {
		t.Error("absent optional pointers should be nil")
	}
}

func TestDecodeBatchReportsPosition(t *testing.T) {
	good := baseCall()
	bad := baseCall()
	bad["block_reason"] = "42"

	b, err := json.Marshal([]map[string]any{good, bad, good})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Decode(b, time.UTC)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a DecodeError", err)
	}
	if de.Record != 2 {
		t.Errorf("Record = %d, want 2", de.Record)
	}
	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("message %q does not name the record position", err.Error())
	}
	if de.Field != "block_reason" {
		t.Errorf("Field = %q, want block_reason", de.Field)
	}
}

func TestDecodeBatchKeepsOrder(t *testing.T) {
	first := baseCall()
	first["_id"] = "1"
	second := baseCall()
	second["_id"] = "2"

	calls := mustDecode(t, []map[string]any{first, second})
	if len(calls) != 2 || calls[0].ID != 1 || calls[1].ID != 2 {
		t.Errorf("batch order not preserved: %+v", calls)
	}
}

func TestDecodeRejectsNonObjectDocument(t *testing.T) {
	if _, err := Decode([]byte(`"nope"`), time.UTC); err == nil {
		t.Error("Decode accepted a bare string document")
	}
	if _, err := Decode([]byte(`[1,2]`), time.UTC); err == nil {
		t.Error("Decode accepted an array of non-objects")
	}
}

func TestDecodeTimezoneNormalization(t *testing.T) {
	vienna, err := time.LoadLocation("Europe/Vienna")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	b, _ := json.Marshal(baseCall())
	calls, err := Decode(b, vienna)
	if err != nil {
		t.Fatal(err)
	}
	c := calls[0]
	if c.Date.Location() != vienna {
		t.Errorf("Date location = %v, want Europe/Vienna", c.Date.Location())
	}
	// Same instant, different wall clock.
	if !c.Date.Equal(testDate) {
		t.Errorf("Date = %v, not the same instant as %v", c.Date, testDate)
	}
}
