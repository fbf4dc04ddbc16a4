package nbrb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"belrates/internal/domain"
)

// Provider field names, in the order the API sends them.
const (
	FieldID           = "Cur_ID"
	FieldDate         = "Date"
	FieldAbbreviation = "Cur_Abbreviation"
	FieldScale        = "Cur_Scale"
	FieldName         = "Cur_Name"
	FieldOfficialRate = "Cur_OfficialRate"
)

var fieldOrder = [...]string{FieldID, FieldDate, FieldAbbreviation, FieldScale, FieldName, FieldOfficialRate}

// Decoder reads the single rate record returned by /exrates/rates/{id}.
// It is stateless and safe for concurrent use.
type Decoder struct{}

func NewDecoder() *Decoder { return &Decoder{} }

type record struct {
	id           uint32
	date         string
	currency     domain.Currency
	scale        uint32
	name         string
	officialRate float64
}

func (d *Decoder) Decode(body []byte) (domain.Rate, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.Equal(trimmed, []byte("null")) {
		return domain.Rate{}, domain.ErrNotFound
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return domain.Rate{}, err
	}

	var rec record
	for i, want := range fieldOrder {
		tok, err := dec.Token()
		if err != nil {
			return domain.Rate{}, malformed("read key %d: %v", i, err)
		}
		key, ok := tok.(string)
		if !ok {
			// closing brace before all six members were read
			return domain.Rate{}, malformed("expected %d fields, got %d", len(fieldOrder), i)
		}
		if key != want {
			return domain.Rate{}, malformed("field %d is %q, expected %q", i, key, want)
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return domain.Rate{}, malformed("read value of %q: %v", key, err)
		}
		if err = rec.set(key, raw); err != nil {
			return domain.Rate{}, &domain.FieldParseError{Field: key, Err: err}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return domain.Rate{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.Rate{}, malformed("unexpected data after record")
	}

	return domain.NewRate(rec.id, rec.date, rec.currency, rec.scale, rec.name, rec.officialRate)
}

func (r *record) set(key string, raw json.RawMessage) error {
	var err error
	switch key {
	case FieldID:
		r.id, err = parseUint(raw)
		if err == nil && r.id == 0 {
			err = errors.New("record id must be positive")
		}
	case FieldDate:
		r.date, err = parseString(raw)
	case FieldAbbreviation:
		var code string
		if code, err = parseString(raw); err != nil {
			return err
		}
		if r.currency, err = domain.ParseCurrency(code); err != nil {
			return err
		}
		if !r.currency.Requestable() {
			err = fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, code)
		}
	case FieldScale:
		r.scale, err = parseUint(raw)
	case FieldName:
		r.name, err = parseString(raw)
	case FieldOfficialRate:
		r.officialRate, err = parseNonNegativeFloat(raw)
	}
	return err
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return malformed("expected %q: %v", want, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return malformed("expected %q, got %v", want, tok)
	}
	return nil
}

func parseString(raw json.RawMessage) (string, error) {
	var s string
	if len(raw) == 0 || raw[0] != '"' {
		return "", fmt.Errorf("expected string, got %s", raw)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected string, got %s", raw)
	}
	return s, nil
}

func parseUint(raw json.RawMessage) (uint32, error) {
	v, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected non-negative integer, got %s", raw)
	}
	return uint32(v), nil
}

func parseNonNegativeFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || raw[0] == '"' {
		return 0, fmt.Errorf("expected number, got %s", raw)
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %s", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("rate must not be negative, got %s", raw)
	}
	return v, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrMalformedResponse, fmt.Sprintf(format, args...))
}
