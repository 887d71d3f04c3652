package entity

// ItemKind distinguishes the two kinds of user content that can be saved or commented on.
type ItemKind string

const (
	ItemKindRecipe ItemKind = "recipe"
	ItemKindReview ItemKind = "review"
)

// IsValid checks if the kind is recipe or review.
func (k ItemKind) IsValid() bool {
	return k == ItemKindRecipe || k == ItemKindReview
}

// String returns the string representation of the ItemKind.
func (k ItemKind) String() string {
	return string(k)
}
