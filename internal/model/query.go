package model

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query is the flat key/value form of a Params. Keys keep the order in
// which they were added, and Encode always adds them in canonical field
// order, so the same Params always yields the same Query.
type Query struct {
	keys   []string
	values map[string]string
}

func (q *Query) set(f Field, v string) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	k := string(f)
	if _, ok := q.values[k]; !ok {
		q.keys = append(q.keys, k)
	}
	q.values[k] = v
}

// Get returns the value for key and whether it is present.
func (q Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Len returns the number of keys.
func (q Query) Len() int {
	return len(q.keys)
}

// Keys returns the keys in order.
func (q Query) Keys() []string {
	return slices.Clone(q.keys)
}

// Map returns a copy of the mapping. It is never nil.
func (q Query) Map() map[string]string {
	out := make(map[string]string, len(q.values))
	maps.Copy(out, q.values)
	return out
}

// Values converts the mapping to url.Values.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q.keys))
	for _, k := range q.keys {
		v.Set(k, q.values[k])
	}
	return v
}

// Encode returns the URL-encoded query string, keys sorted.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// String renders the mapping as key=value pairs in key order, unescaped.
func (q Query) String() string {
	parts := make([]string, len(q.keys))
	for i, k := range q.keys {
		parts[i] = k + "=" + q.values[k]
	}
	return strings.Join(parts, "&")
}

// QueryParams is shorthand for Encode(p).
func (p Params) QueryParams() Query {
	return Encode(p)
}

// Encode turns p into its query mapping. Unset fields produce no key.
//
// A few fields are deliberately lossy: staff_picks, has_video, recommended,
// social and starred only appear when true, and include_potd only appears
// alongside staff_picks=true. The default sort, and any sort without a wire
// name, is never written.
func Encode(p Params) Query {
	var q Query

	if p.staffPicks.Is(true) {
		q.set(FieldStaffPicks, "true")
	}
	if p.hasVideo.Is(true) {
		q.set(FieldHasVideo, "true")
	}
	if p.starred.Is(true) {
		q.set(FieldStarred, "1")
	}
	if v, ok := p.backed.Get(); ok {
		q.set(FieldBacked, triState(v))
	}
	if p.social.Is(true) {
		q.set(FieldSocial, "1")
	}
	if p.recommended.Is(true) {
		q.set(FieldRecommended, "true")
	}
	if v, ok := p.similarTo.Get(); ok {
		q.set(FieldSimilarTo, strconv.FormatInt(v.ID, 10))
	}
	if v, ok := p.category.Get(); ok {
		q.set(FieldCategory, strconv.FormatInt(v.ID, 10))
	}
	if v, ok := p.query.Get(); ok {
		q.set(FieldQuery, v)
	}
	if v, ok := p.state.Get(); ok {
		q.set(FieldState, v.WireName())
	}
	if p.sort != SortMagic && p.sort.IsValid() {
		q.set(FieldSort, p.sort.WireName())
	}
	if v, ok := p.page.Get(); ok {
		q.set(FieldPage, strconv.Itoa(v))
	}
	if v, ok := p.perPage.Get(); ok {
		q.set(FieldPerPage, strconv.Itoa(v))
	}
	if v, ok := p.seed.Get(); ok {
		q.set(FieldSeed, strconv.Itoa(v))
	}
	if p.includePOTD.Is(true) && p.staffPicks.Is(true) {
		q.set(FieldIncludePOTD, "true")
	}

	return q
}

func triState(v bool) string {
	if v {
		return "1"
	}
	return "-1"
}
