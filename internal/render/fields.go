package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/model"
)

// formatters maps every renderable field name to its display rule. The
// map keys double as the set of valid column names; the "date" and
// "time" pseudo-columns are handled separately because their format
// depends on the selected column list.
var formatters = map[string]func(*model.CallRecord) string{
	"_id":           func(r *model.CallRecord) string { return strconv.FormatInt(r.ID, 10) },
	"type":          func(r *model.CallRecord) string { return r.Type.String() },
	"presentation":  func(r *model.CallRecord) string { return r.Presentation.String() },
	"duration":      func(r *model.CallRecord) string { return formatDuration(r.Duration) },
	"missed_reason": func(r *model.CallRecord) string { return r.MissedReason.String() },
	"block_reason":  func(r *model.CallRecord) string { return r.BlockReason.String() },
	"features":      func(r *model.CallRecord) string { return r.Features.String() },
	"numbertype":    func(r *model.CallRecord) string { return r.NumberType.String() },

	"number":           func(r *model.CallRecord) string { return r.Number },
	"via_number":       func(r *model.CallRecord) string { return r.ViaNumber },
	"post_dial_digits": func(r *model.CallRecord) string { return r.PostDialDigits },
	"countryiso":       func(r *model.CallRecord) string { return r.CountryISO },

	"phone_account_hidden":        func(r *model.CallRecord) string { return yesNo(r.PhoneAccountHidden) },
	"phone_account_address":       func(r *model.CallRecord) string { return r.PhoneAccountAddress },
	"subscription_component_name": func(r *model.CallRecord) string { return r.SubscriptionComponentName },
	"subscription_id":             func(r *model.CallRecord) string { return strconv.FormatInt(r.SubscriptionID, 10) },

	"is_read":           func(r *model.CallRecord) string { return yesNo(r.IsRead) },
	"new":               func(r *model.CallRecord) string { return yesNo(r.New) },
	"add_for_all_users": func(r *model.CallRecord) string { return yesNo(r.AddForAllUsers) },
	"is_call_log_phone_account_migration_pending": func(r *model.CallRecord) string { return yesNo(r.MigrationPending) },
	"transcription_state":                         func(r *model.CallRecord) string { return yesNo(r.TranscriptionState) },

	"photo_id":      func(r *model.CallRecord) string { return strconv.FormatInt(r.PhotoID, 10) },
	"priority":      func(r *model.CallRecord) string { return strconv.FormatInt(r.Priority, 10) },
	"last_modified": func(r *model.CallRecord) string { return r.LastModified.Format("02.01.2006 15:04:05") },

	"subject":           func(r *model.CallRecord) string { return strOrEmpty(r.Subject) },
	"matched_number":    func(r *model.CallRecord) string { return strOrEmpty(r.MatchedNumber) },
	"normalized_number": func(r *model.CallRecord) string { return strOrEmpty(r.NormalizedNumber) },
	"lookup_uri":        func(r *model.CallRecord) string { return strOrEmpty(r.LookupURI) },
	"name":              func(r *model.CallRecord) string { return r.Name },
	"display_name":      func(r *model.CallRecord) string { return r.DisplayName },
	"geocoded_location": func(r *model.CallRecord) string { return r.GeocodedLocation },

	// The exporter often leaves the formatted number empty; fall back to
	// the normalized number and then to the raw one.
	"formatted_nummer": func(r *model.CallRecord) string {
		if v := strOrEmpty(r.FormattedNumber); v != "" {
			return v
		}
		if v := strOrEmpty(r.NormalizedNumber); v != "" {
			return v
		}
		return r.Number
	},

	"data_usage": func(r *model.CallRecord) string {
		if r.DataUsage == nil {
			return ""
		}
		return strconv.FormatInt(*r.DataUsage, 10)
	},
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatDuration renders a time span as H:MM:SS, zero padded on the
// left to at least eight characters, so 0 is "00:00:00" and 3661s is
// "01:01:01".
func formatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	s := fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
