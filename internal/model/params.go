// Package model holds the discovery query parameters and their query-string
// codec.
package model

// CategoryRef identifies a category by id.
type CategoryRef struct {
	ID int64 `json:"id"`
}

// ProjectRef identifies a project by id.
type ProjectRef struct {
	ID int64 `json:"id"`
}

// Params holds the filter, sort and paging criteria of a discovery query.
//
// Params is immutable. Every With method returns a new value and leaves the
// receiver untouched, so a Params can be shared freely between goroutines.
// Two Params are equal when all fields are equal; == works.
//
// The zero value is the same as Defaults().
type Params struct {
	staffPicks  Optional[bool]
	hasVideo    Optional[bool]
	starred     Optional[bool]
	backed      Optional[bool]
	social      Optional[bool]
	recommended Optional[bool]
	similarTo   Optional[ProjectRef]
	category    Optional[CategoryRef]
	query       Optional[string]
	state       Optional[State]
	sort        Sort
	page        Optional[int]
	perPage     Optional[int]
	seed        Optional[int]
	includePOTD Optional[bool]
}

// Defaults returns params with every field unset and the magic sort.
func Defaults() Params {
	return Params{sort: SortMagic}
}

// Equal reports whether p and o hold the same criteria.
func (p Params) Equal(o Params) bool {
	return p == o
}

// IsDefault reports whether p carries no criteria beyond the defaults.
func (p Params) IsDefault() bool {
	return p == Defaults()
}

// Accessors return the field value and whether it is set.

func (p Params) StaffPicks() (bool, bool) { return p.staffPicks.Get() }
func (p Params) HasVideo() (bool, bool) { return p.hasVideo.Get() }
func (p Params) Starred() (bool, bool) { return p.starred.Get() }
func (p Params) Backed() (bool, bool) { return p.backed.Get() }
func (p Params) Social() (bool, bool) { return p.social.Get() }
func (p Params) Recommended() (bool, bool) { return p.recommended.Get() }
func (p Params) SimilarTo() (ProjectRef, bool) { return p.similarTo.Get() }
func (p Params) Category() (CategoryRef, bool) { return p.category.Get() }
func (p Params) Query() (string, bool) { return p.query.Get() }
func (p Params) State() (State, bool) { return p.state.Get() }
func (p Params) Sort() Sort { return p.sort }
func (p Params) Page() (int, bool) { return p.page.Get() }
func (p Params) PerPage() (int, bool) { return p.perPage.Get() }
func (p Params) Seed() (int, bool) { return p.seed.Get() }
func (p Params) IncludePOTD() (bool, bool) { return p.includePOTD.Get() }

// WithStaffPicks restricts results to staff-curated projects (or not).
func (p Params) WithStaffPicks(v bool) Params {
	p.staffPicks = Some(v)
	return p
}

// WithHasVideo filters on whether a project has a video.
func (p Params) WithHasVideo(v bool) Params {
	p.hasVideo = Some(v)
	return p
}

// WithStarred filters on projects the viewer starred.
func (p Params) WithStarred(v bool) Params {
	p.starred = Some(v)
	return p
}

// WithBacked filters on projects the viewer backed (true) or did not back (false).
func (p Params) WithBacked(v bool) Params {
	p.backed = Some(v)
	return p
}

// WithSocial filters on projects connected through the viewer's social graph.
func (p Params) WithSocial(v bool) Params {
	p.social = Some(v)
	return p
}

// WithRecommended filters on recommended projects.
func (p Params) WithRecommended(v bool) Params {
	p.recommended = Some(v)
	return p
}

// WithSimilarTo filters on projects similar to project.
func (p Params) WithSimilarTo(project ProjectRef) Params {
	p.similarTo = Some(project)
	return p
}

// WithCategory filters on a category.
func (p Params) WithCategory(category CategoryRef) Params {
	p.category = Some(category)
	return p
}

// WithQuery sets the free-text search term.
func (p Params) WithQuery(term string) Params {
	p.query = Some(term)
	return p
}

// WithState filters on a project lifecycle state.
func (p Params) WithState(s State) Params {
	p.state = Some(s)
	return p
}

// WithSort sets the sort order.
func (p Params) WithSort(s Sort) Params {
	p.sort = s
	return p
}

// WithPage sets the 1-based page number.
func (p Params) WithPage(n int) Params {
	p.page = Some(n)
	return p
}

// WithPerPage sets the page size.
func (p Params) WithPerPage(n int) Params {
	p.perPage = Some(n)
	return p
}

// WithSeed sets the randomization seed used by the magic ordering.
func (p Params) WithSeed(n int) Params {
	p.seed = Some(n)
	return p
}

// WithIncludePOTD asks for the project of the day. It only reaches the wire
// when staff picks is also on.
func (p Params) WithIncludePOTD(v bool) Params {
	p.includePOTD = Some(v)
	return p
}

// Without clears field f. Clearing FieldSort restores the magic sort;
// unknown fields leave p unchanged.
func (p Params) Without(f Field) Params {
	switch f {
	case FieldStaffPicks:
		p.staffPicks = None[bool]()
	case FieldHasVideo:
		p.hasVideo = None[bool]()
	case FieldStarred:
		p.starred = None[bool]()
	case FieldBacked:
		p.backed = None[bool]()
	case FieldSocial:
		p.social = None[bool]()
	case FieldRecommended:
		p.recommended = None[bool]()
	case FieldSimilarTo:
		p.similarTo = None[ProjectRef]()
	case FieldCategory:
		p.category = None[CategoryRef]()
	case FieldQuery:
		p.query = None[string]()
	case FieldState:
		p.state = None[State]()
	case FieldSort:
		p.sort = SortMagic
	case FieldPage:
		p.page = None[int]()
	case FieldPerPage:
		p.perPage = None[int]()
	case FieldSeed:
		p.seed = None[int]()
	case FieldIncludePOTD:
		p.includePOTD = None[bool]()
	}
	return p
}
