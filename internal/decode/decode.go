// Package decode turns raw JSON call objects from an Android call log
// export into typed model.CallRecord values. The export encodes almost
// everything as strings: epoch-millisecond timestamps, second counts,
// stringified enum integers and "1"/"0" booleans, so every field goes
// through an explicit typed parser.
package decode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/metrics"
	"github.com/evilscientress/android-call-log-converter/internal/model"
)

// DecodeError reports a single field that could not be decoded: a
// required key that is missing, an undefined enum/flag integer, or a
// value of the wrong shape. Record is the 1-based position within a
// batch, 0 when the input was a single object.
type DecodeError struct {
	Field  string
	Value  any
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("field %q: %v", e.Field, e.Err)
	if e.Value != nil {
		msg = fmt.Sprintf("field %q: value %v: %v", e.Field, e.Value, e.Err)
	}
	if e.Record > 0 {
		return fmt.Sprintf("record %d: %s", e.Record, msg)
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errMissing = errors.New("required field missing")

// Decode parses a JSON export document, which is either one call object
// or an array of them, and returns the records in input order. Decoding
// stops at the first bad record; the returned error identifies its
// position in the array.
func Decode(data []byte, loc *time.Location) ([]model.CallRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	switch doc := raw.(type) {
	case map[string]any:
		rec, err := Object(doc, loc)
		if err != nil {
			metrics.DecodeFailures.Inc()
			return nil, err
		}
		metrics.RecordsDecoded.Inc()
		return []model.CallRecord{*rec}, nil
	case []any:
		records := make([]model.CallRecord, 0, len(doc))
		for i, el := range doc {
			obj, ok := el.(map[string]any)
			if !ok {
				metrics.DecodeFailures.Inc()
				return nil, fmt.Errorf("record %d: expected a json object, got %T", i+1, el)
			}
			rec, err := Object(obj, loc)
			if err != nil {
				metrics.DecodeFailures.Inc()
				var de *DecodeError
				if errors.As(err, &de) {
					de.Record = i + 1
				}
				return nil, err
			}
			records = append(records, *rec)
		}
		metrics.RecordsDecoded.Add(float64(len(records)))
		return records, nil
	default:
		return nil, fmt.Errorf("expected a json object or array, got %T", raw)
	}
}

// Object decodes a single raw call object.
func Object(obj map[string]any, loc *time.Location) (*model.CallRecord, error) {
	rec := &model.CallRecord{}
	for _, f := range fields {
		v, present := obj[f.name]
		if !present {
			if f.optional {
				continue
			}
			return nil, &DecodeError{Field: f.name, Err: errMissing}
		}
		if err := f.assign(rec, v, loc); err != nil {
			return nil, &DecodeError{Field: f.name, Value: v, Err: err}
		}
	}
	return rec, nil
}

// fieldSpec binds one export key to its typed parser. A field without
// optional=true must be present in every record.
type fieldSpec struct {
	name     string
	optional bool
	assign   func(r *model.CallRecord, v any, loc *time.Location) error
}

var fields = []fieldSpec{
	{name: "_id", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.ID, err = asInt(v)
		return
	}},
	{name: "date", assign: func(r *model.CallRecord, v any, loc *time.Location) (err error) {
		r.Date, err = asTime(v, loc)
		return
	}},
	{name: "type", assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asInt(v)
		if err != nil {
			return err
		}
		t, ok := model.ParseCallType(n)
		if !ok {
			return fmt.Errorf("unknown call type %d", n)
		}
		r.Type = t
		return nil
	}},
	{name: "presentation", assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asInt(v)
		if err != nil {
			return err
		}
		p, ok := model.ParseNumberPresentation(n)
		if !ok {
			return fmt.Errorf("unknown number presentation %d", n)
		}
		r.Presentation = p
		return nil
	}},
	{name: "duration", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.Duration, err = asDuration(v)
		return
	}},
	{name: "missed_reason", assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asUint(v)
		if err != nil {
			return err
		}
		m, ok := model.ParseMissedReason(n)
		if !ok {
			return fmt.Errorf("unknown missed reason bits in %#x", n)
		}
		r.MissedReason = m
		return nil
	}},
	{name: "block_reason", assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asInt(v)
		if err != nil {
			return err
		}
		b, ok := model.ParseBlockReason(n)
		if !ok {
			return fmt.Errorf("unknown block reason %d", n)
		}
		r.BlockReason = b
		return nil
	}},
	{name: "features", assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asUint(v)
		if err != nil {
			return err
		}
		f, ok := model.ParseCallFeatures(n)
		if !ok {
			return fmt.Errorf("unknown feature bits in %#x", n)
		}
		r.Features = f
		return nil
	}},
	{name: "number", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.Number, err = asString(v)
		return
	}},
	{name: "via_number", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.ViaNumber, err = asString(v)
		return
	}},
	{name: "post_dial_digits", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.PostDialDigits, err = asString(v)
		return
	}},
	{name: "countryiso", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.CountryISO, err = asString(v)
		return
	}},
	{name: "phone_account_hidden", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.PhoneAccountHidden, err = asBool(v)
		return
	}},
	{name: "phone_account_address", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.PhoneAccountAddress, err = asString(v)
		return
	}},
	{name: "subscription_component_name", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.SubscriptionComponentName, err = asString(v)
		return
	}},
	{name: "subscription_id", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.SubscriptionID, err = asInt(v)
		return
	}},
	{name: "is_read", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.IsRead, err = asBool(v)
		return
	}},
	{name: "new", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.New, err = asBool(v)
		return
	}},
	{name: "add_for_all_users", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.AddForAllUsers, err = asBool(v)
		return
	}},
	{name: "is_call_log_phone_account_migration_pending", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.MigrationPending, err = asBool(v)
		return
	}},
	{name: "transcription_state", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.TranscriptionState, err = asBool(v)
		return
	}},
	{name: "photo_id", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.PhotoID, err = asInt(v)
		return
	}},
	{name: "priority", assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.Priority, err = asInt(v)
		return
	}},
	{name: "last_modified", assign: func(r *model.CallRecord, v any, loc *time.Location) (err error) {
		r.LastModified, err = asTime(v, loc)
		return
	}},

	// Optional keys. Absent means "no value" and renders empty.
	{name: "subject", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.Subject, err = asStringPtr(v)
		return
	}},
	{name: "matched_number", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.MatchedNumber, err = asStringPtr(v)
		return
	}},
	{name: "formatted_nummer", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.FormattedNumber, err = asStringPtr(v)
		return
	}},
	{name: "normalized_number", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.NormalizedNumber, err = asStringPtr(v)
		return
	}},
	{name: "lookup_uri", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.LookupURI, err = asStringPtr(v)
		return
	}},
	{name: "name", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.Name, err = asString(v)
		return
	}},
	{name: "display_name", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.DisplayName, err = asString(v)
		return
	}},
	{name: "numbertype", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asInt(v)
		if err != nil {
			return err
		}
		t, ok := model.ParseNumberType(n)
		if !ok {
			return fmt.Errorf("unknown number type %d", n)
		}
		r.NumberType = t
		return nil
	}},
	{name: "data_usage", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) error {
		n, err := asInt(v)
		if err != nil {
			return err
		}
		r.DataUsage = &n
		return nil
	}},
	{name: "geocoded_location", optional: true, assign: func(r *model.CallRecord, v any, _ *time.Location) (err error) {
		r.GeocodedLocation, err = asString(v)
		return
	}},
}
