package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Decode builds Params from an untyped key/value mapping such as a parsed
// query string. Unknown keys are ignored and absent keys leave their field
// unset. The first recognized key whose value does not parse fails the whole
// decode with a *DecodeError; no partially decoded Params is returned.
func Decode(raw map[string]string) (Params, error) {
	p := Defaults()
	for _, f := range fieldOrder {
		v, ok := raw[string(f)]
		if !ok {
			continue
		}
		next, err := decodeField(p, f, v)
		if err != nil {
			return Defaults(), &DecodeError{Field: f, Value: v, Err: err}
		}
		p = next
	}
	return p, nil
}

// DecodeValues decodes url.Values, using the first value of each key.
func DecodeValues(values url.Values) (Params, error) {
	raw := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			raw[k] = vs[0]
		}
	}
	return Decode(raw)
}

// DecodeQuery decodes a raw query string. A leading "?" is allowed.
func DecodeQuery(rawQuery string) (Params, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return Defaults(), fmt.Errorf("parse query: %w", err)
	}
	return DecodeValues(values)
}

// DecodeURL decodes the query of a link, e.g. a discovery deep link.
func DecodeURL(link string) (Params, error) {
	u, err := url.Parse(link)
	if err != nil {
		return Defaults(), fmt.Errorf("parse url: %w", err)
	}
	return DecodeQuery(u.RawQuery)
}

// DecodeJSON decodes a JSON object as sent in server payloads. Values may be
// strings, numbers or booleans and are decoded from their text form; null
// counts as absent. Any other value for a recognized key is a *DecodeError.
func DecodeJSON(data []byte) (Params, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return Defaults(), fmt.Errorf("decode json: %w", err)
	}
	if obj == nil {
		return Defaults(), errors.New("decode json: not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return Defaults(), errors.New("decode json: unexpected data after object")
	}

	raw := make(map[string]string, len(obj))
	for _, f := range fieldOrder {
		v, ok := obj[string(f)]
		if !ok {
			continue
		}
		switch tv := v.(type) {
		case nil:
		case string:
			raw[string(f)] = tv
		case json.Number:
			raw[string(f)] = tv.String()
		case bool:
			raw[string(f)] = strconv.FormatBool(tv)
		default:
			return Defaults(), &DecodeError{Field: f, Value: fmt.Sprint(tv), Err: ErrUnsupportedValue}
		}
	}
	return Decode(raw)
}

func decodeField(p Params, f Field, v string) (Params, error) {
	switch f {
	case FieldStaffPicks, FieldHasVideo, FieldRecommended, FieldIncludePOTD:
		b, err := parseBool(v)
		if err != nil {
			return p, err
		}
		switch f {
		case FieldStaffPicks:
			return p.WithStaffPicks(b), nil
		case FieldHasVideo:
			return p.WithHasVideo(b), nil
		case FieldRecommended:
			return p.WithRecommended(b), nil
		default:
			return p.WithIncludePOTD(b), nil
		}

	case FieldBacked, FieldSocial, FieldStarred:
		b, err := parseTriState(v)
		if err != nil {
			return p, err
		}
		if !b.IsSet() {
			return p, nil
		}
		switch val, _ := b.Get(); f {
		case FieldBacked:
			return p.WithBacked(val), nil
		case FieldSocial:
			return p.WithSocial(val), nil
		default:
			return p.WithStarred(val), nil
		}

	case FieldQuery:
		return p.WithQuery(v), nil

	case FieldSort:
		s, ok := ParseSort(v)
		if !ok {
			return p, ErrUnknownSort
		}
		return p.WithSort(s), nil

	case FieldState:
		s, ok := ParseState(v)
		if !ok {
			return p, ErrUnknownState
		}
		return p.WithState(s), nil

	case FieldPage, FieldPerPage, FieldSeed:
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, ErrInvalidInt
		}
		switch f {
		case FieldPage:
			return p.WithPage(n), nil
		case FieldPerPage:
			return p.WithPerPage(n), nil
		default:
			return p.WithSeed(n), nil
		}

	case FieldCategory, FieldSimilarTo:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, ErrInvalidInt
		}
		if f == FieldCategory {
			return p.WithCategory(CategoryRef{ID: id}), nil
		}
		return p.WithSimilarTo(ProjectRef{ID: id}), nil
	}
	return p, nil
}

// parseBool accepts the server's boolean spellings, case-insensitively.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "t", "on":
		return true, nil
	case "false", "0", "f", "off":
		return false, nil
	}
	return false, ErrInvalidBool
}

// parseTriState maps "1" to true, "-1" to false and "0" to unset.
func parseTriState(s string) (Optional[bool], error) {
	switch s {
	case "1":
		return Some(true), nil
	case "-1":
		return Some(false), nil
	case "0":
		return None[bool](), nil
	}
	return None[bool](), ErrInvalidTriState
}
