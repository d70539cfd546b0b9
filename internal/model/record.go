package model

import "time"

// CallRecord is the normalized representation of one call log entry.
// Timestamps are already shifted into the configured display timezone by
// the decoder; a record is built once and never mutated afterwards.
//
// Pointer fields are optional in the export: nil means the key was absent
// and renders as an empty CSV cell.
type CallRecord struct {
	ID   int64     // _id of the provider row
	Date time.Time // when the call happened

	Type         CallType
	Presentation NumberPresentation
	Duration     time.Duration
	MissedReason MissedReason
	BlockReason  BlockReason
	Features     CallFeatures

	Number         string
	ViaNumber      string
	PostDialDigits string
	CountryISO     string

	PhoneAccountHidden        bool
	PhoneAccountAddress       string
	SubscriptionComponentName string
	SubscriptionID            int64

	// Read/acknowledged state as tracked by the dialer app.
	IsRead             bool
	New                bool
	AddForAllUsers     bool
	MigrationPending   bool // is_call_log_phone_account_migration_pending
	TranscriptionState bool

	PhotoID  int64
	Priority int64

	// When the provider row was last touched.
	LastModified time.Time

	Subject          *string
	MatchedNumber    *string
	FormattedNumber  *string // formatted_nummer, sic in the export schema
	NormalizedNumber *string
	LookupURI        *string
	Name             string
	DisplayName      string
	NumberType       NumberType
	DataUsage        *int64
	GeocodedLocation string
}
