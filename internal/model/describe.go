package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type describedField struct {
	name  string
	value string
	set   bool
}

func (p Params) describe() []describedField {
	return []describedField{
		describeOpt("staffPicks", p.staffPicks, strconv.FormatBool),
		describeOpt("hasVideo", p.hasVideo, strconv.FormatBool),
		describeOpt("starred", p.starred, strconv.FormatBool),
		describeOpt("backed", p.backed, strconv.FormatBool),
		describeOpt("social", p.social, strconv.FormatBool),
		describeOpt("recommended", p.recommended, strconv.FormatBool),
		describeOpt("similarTo", p.similarTo, func(r ProjectRef) string { return "project#" + strconv.FormatInt(r.ID, 10) }),
		describeOpt("category", p.category, func(r CategoryRef) string { return "category#" + strconv.FormatInt(r.ID, 10) }),
		describeOpt("query", p.query, strconv.Quote),
		describeOpt("state", p.state, State.String),
		{name: "sort", value: p.sort.String(), set: p.sort != SortMagic},
		describeOpt("page", p.page, strconv.Itoa),
		describeOpt("perPage", p.perPage, strconv.Itoa),
		describeOpt("seed", p.seed, strconv.Itoa),
		describeOpt("includePOTD", p.includePOTD, strconv.FormatBool),
	}
}

func describeOpt[T comparable](name string, o Optional[T], format func(T) string) describedField {
	v, ok := o.Get()
	if !ok {
		return describedField{name: name}
	}
	return describedField{name: name, value: format(v), set: true}
}

// String lists the fields that differ from the defaults, e.g.
// `Params(staffPicks: true, sort: popular)`.
func (p Params) String() string {
	var parts []string
	for _, d := range p.describe() {
		if d.set {
			parts = append(parts, d.name+": "+d.value)
		}
	}
	return "Params(" + strings.Join(parts, ", ") + ")"
}

// GoString lists every field, with nil for unset ones.
func (p Params) GoString() string {
	parts := make([]string, 0, len(fieldOrder))
	for _, d := range p.describe() {
		v := d.value
		if !d.set {
			v = "nil"
			if d.name == "sort" {
				v = p.sort.String()
			}
		}
		parts = append(parts, d.name+": "+v)
	}
	return fmt.Sprintf("model.Params{%s}", strings.Join(parts, ", "))
}

type paramsJSON struct {
	StaffPicks  *bool        `json:"staffPicks,omitempty"`
	HasVideo    *bool        `json:"hasVideo,omitempty"`
	Starred     *bool        `json:"starred,omitempty"`
	Backed      *bool        `json:"backed,omitempty"`
	Social      *bool        `json:"social,omitempty"`
	Recommended *bool        `json:"recommended,omitempty"`
	SimilarTo   *ProjectRef  `json:"similarTo,omitempty"`
	Category    *CategoryRef `json:"category,omitempty"`
	Query       *string      `json:"query,omitempty"`
	State       *string      `json:"state,omitempty"`
	Sort        string       `json:"sort"`
	Page        *int         `json:"page,omitempty"`
	PerPage     *int         `json:"perPage,omitempty"`
	Seed        *int         `json:"seed,omitempty"`
	IncludePOTD *bool        `json:"includePOTD,omitempty"`
}

// MarshalJSON renders the set fields plus the sort.
func (p Params) MarshalJSON() ([]byte, error) {
	out := paramsJSON{
		StaffPicks:  optPtr(p.staffPicks),
		HasVideo:    optPtr(p.hasVideo),
		Starred:     optPtr(p.starred),
		Backed:      optPtr(p.backed),
		Social:      optPtr(p.social),
		Recommended: optPtr(p.recommended),
		SimilarTo:   optPtr(p.similarTo),
		Category:    optPtr(p.category),
		Query:       optPtr(p.query),
		Sort:        p.sort.String(),
		Page:        optPtr(p.page),
		PerPage:     optPtr(p.perPage),
		Seed:        optPtr(p.seed),
		IncludePOTD: optPtr(p.includePOTD),
	}
	if s, ok := p.state.Get(); ok {
		name := s.String()
		out.State = &name
	}
	return json.Marshal(out)
}

func optPtr[T comparable](o Optional[T]) *T {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return &v
}
