package model

// Sample references standing in for the category and project fixtures of
// the surrounding app.
var (
	categoryArt          = CategoryRef{ID: 1}
	categoryFilmAndVideo = CategoryRef{ID: 11}
	categoryIllustration = CategoryRef{ID: 22}
	categoryDocumentary  = CategoryRef{ID: 30}

	projectTemplate = ProjectRef{ID: 1}
	projectCosmic   = ProjectRef{ID: 2147483648}
)

// fullParams sets every field to a non-default value.
func fullParams() Params {
	return Defaults().
		WithStaffPicks(true).
		WithHasVideo(true).
		WithStarred(true).
		WithBacked(false).
		WithSocial(true).
		WithRecommended(true).
		WithSimilarTo(projectTemplate).
		WithCategory(categoryArt).
		WithQuery("wallet").
		WithState(StateLive).
		WithSort(SortPopular).
		WithPage(1).
		WithPerPage(20).
		WithSeed(123)
}
