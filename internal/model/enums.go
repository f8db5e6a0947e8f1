package model

import "strconv"

// Sort is the ordering of discovery results.
// The zero value is SortMagic, the API default.
type Sort int

const (
	SortMagic Sort = iota
	SortPopular
	SortNewest
	SortEndingSoon
	SortMostFunded
)

// Wire names are kept in explicit tables so renaming a constant never
// changes what goes over the wire.
var (
	sortNames = map[Sort]string{
		SortMagic:      "magic",
		SortPopular:    "popular",
		SortNewest:     "newest",
		SortEndingSoon: "endingSoon",
		SortMostFunded: "mostFunded",
	}
	sortWire = map[Sort]string{
		SortMagic:      "magic",
		SortPopular:    "popularity",
		SortNewest:     "newest",
		SortEndingSoon: "end_date",
		SortMostFunded: "most_funded",
	}
	sortByWire = invert(sortWire)
)

// String returns the sort's name, e.g. "popular".
func (s Sort) String() string {
	if n, ok := sortNames[s]; ok {
		return n
	}
	return "Sort(" + strconv.Itoa(int(s)) + ")"
}

// WireName returns the token used in query mappings, e.g. "popularity".
func (s Sort) WireName() string {
	return sortWire[s]
}

// IsValid checks whether the sort is a known value.
func (s Sort) IsValid() bool {
	_, ok := sortWire[s]
	return ok
}

// ParseSort returns the Sort whose wire name is exactly name.
func ParseSort(name string) (Sort, bool) {
	s, ok := sortByWire[name]
	return s, ok
}

// Sorts returns every known sort in declaration order.
func Sorts() []Sort {
	return []Sort{SortMagic, SortPopular, SortNewest, SortEndingSoon, SortMostFunded}
}

// State is a project lifecycle state filter.
type State int

const (
	StateAll State = iota
	StateLive
	StateSuccessful
)

var (
	stateWire = map[State]string{
		StateAll:        "all",
		StateLive:       "live",
		StateSuccessful: "successful",
	}
	stateByWire = invert(stateWire)
)

// String returns the state's name. State names and wire names coincide.
func (s State) String() string {
	if n, ok := stateWire[s]; ok {
		return n
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// WireName returns the lowercase token used in query mappings.
func (s State) WireName() string {
	return stateWire[s]
}

// IsValid checks whether the state is a known value.
func (s State) IsValid() bool {
	_, ok := stateWire[s]
	return ok
}

// ParseState returns the State whose wire name is exactly name.
func ParseState(name string) (State, bool) {
	s, ok := stateByWire[name]
	return s, ok
}

// States returns every known state in declaration order.
func States() []State {
	return []State{StateAll, StateLive, StateSuccessful}
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
