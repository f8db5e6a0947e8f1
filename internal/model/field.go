package model

import "slices"

// Field identifies a discovery parameter by its wire key.
type Field string

const (
	FieldStaffPicks  Field = "staff_picks"
	FieldHasVideo    Field = "has_video"
	FieldStarred     Field = "starred"
	FieldBacked      Field = "backed"
	FieldSocial      Field = "social"
	FieldRecommended Field = "recommended"
	FieldSimilarTo   Field = "similar_to"
	FieldCategory    Field = "category_id"
	FieldQuery       Field = "term"
	FieldState       Field = "state"
	FieldSort        Field = "sort"
	FieldPage        Field = "page"
	FieldPerPage     Field = "per_page"
	FieldSeed        Field = "seed"
	FieldIncludePOTD Field = "include_potd"
)

// fieldOrder is the canonical order used when encoding and when picking
// which decode failure to report.
var fieldOrder = []Field{
	FieldStaffPicks,
	FieldHasVideo,
	FieldStarred,
	FieldBacked,
	FieldSocial,
	FieldRecommended,
	FieldSimilarTo,
	FieldCategory,
	FieldQuery,
	FieldState,
	FieldSort,
	FieldPage,
	FieldPerPage,
	FieldSeed,
	FieldIncludePOTD,
}

// String returns the wire key.
func (f Field) String() string {
	return string(f)
}

// IsValid checks whether the field is a known wire key.
func (f Field) IsValid() bool {
	return slices.Contains(fieldOrder, f)
}

// Fields returns every field in canonical order.
func Fields() []Field {
	return slices.Clone(fieldOrder)
}
