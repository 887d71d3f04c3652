package docstore

import (
	"time"

	"makan/internal/domain/entity"

	"github.com/google/uuid"
)

type ingredientDoc struct {
	Name     string  `firestore:"name"`
	Quantity float64 `firestore:"quantity"`
	Unit     string  `firestore:"unit"`
}

type recipeDoc struct {
	Title        string          `firestore:"title"`
	Servings     int             `firestore:"servings"`
	Ingredients  []ingredientDoc `firestore:"ingredients"`
	Instructions string          `firestore:"instructions"`
	ImageURLs    []string        `firestore:"image_urls"`
	AuthorID     string          `firestore:"author_id"`
	AuthorName   string          `firestore:"author_name"`
	CreatedAt    time.Time       `firestore:"created_at"`
}

type reviewDoc struct {
	Title        string    `firestore:"title"`
	StallName    string    `firestore:"stall_name"`
	Location     string    `firestore:"location"`
	OpeningHours string    `firestore:"opening_hours"`
	Experience   string    `firestore:"experience"`
	ImageURLs    []string  `firestore:"image_urls"`
	AuthorID     string    `firestore:"author_id"`
	AuthorName   string    `firestore:"author_name"`
	CreatedAt    time.Time `firestore:"created_at"`
}

type commentDoc struct {
	TargetKind string    `firestore:"target_kind"`
	TargetID   string    `firestore:"target_id"`
	AuthorID   string    `firestore:"author_id"`
	AuthorName string    `firestore:"author_name"`
	Text       string    `firestore:"text"`
	CreatedAt  time.Time `firestore:"created_at"`
}

type savedItemDoc struct {
	AccountID string    `firestore:"account_id"`
	ItemKind  string    `firestore:"item_kind"`
	ItemID    string    `firestore:"item_id"`
	SavedAt   time.Time `firestore:"saved_at"`
}

type chatDoc struct {
	Participants   []string   `firestore:"participants"`
	CreatedAt      time.Time  `firestore:"created_at"`
	LastMessageAt  *time.Time `firestore:"last_message_at"`
	LastActivityAt time.Time  `firestore:"last_activity_at"`
}

type messageDoc struct {
	SenderID string    `firestore:"sender_id"`
	Text     string    `firestore:"text"`
	SentAt   time.Time `firestore:"sent_at"`
}

// parseID tolerates malformed stored identifiers by mapping them to uuid.Nil.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func toRecipeDoc(r *entity.Recipe) *recipeDoc {
	ingredients := make([]ingredientDoc, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, ingredientDoc{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}

	return &recipeDoc{
		Title:        r.Title,
		Servings:     r.Servings,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		ImageURLs:    r.ImageURLs,
		AuthorID:     r.AuthorID.String(),
		AuthorName:   r.AuthorName,
		CreatedAt:    r.CreatedAt,
	}
}

func (d *recipeDoc) toEntity(id string) *entity.Recipe {
	ingredients := make([]entity.Ingredient, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		ingredients = append(ingredients, entity.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit})
	}

	return &entity.Recipe{
		ID:           parseID(id),
		Title:        d.Title,
		Servings:     d.Servings,
		Ingredients:  ingredients,
		Instructions: d.Instructions,
		ImageURLs:    d.ImageURLs,
		AuthorID:     parseID(d.AuthorID),
		AuthorName:   d.AuthorName,
		CreatedAt:    d.CreatedAt,
	}
}

func toReviewDoc(r *entity.Review) *reviewDoc {
	return &reviewDoc{
		Title:        r.Title,
		StallName:    r.StallName,
		Location:     r.Location,
		OpeningHours: r.OpeningHours,
		Experience:   r.Experience,
		ImageURLs:    r.ImageURLs,
		AuthorID:     r.AuthorID.String(),
		AuthorName:   r.AuthorName,
		CreatedAt:    r.CreatedAt,
	}
}

func (d *reviewDoc) toEntity(id string) *entity.Review {
	return &entity.Review{
		ID:           parseID(id),
		Title:        d.Title,
		StallName:    d.StallName,
		Location:     d.Location,
		OpeningHours: d.OpeningHours,
		Experience:   d.Experience,
		ImageURLs:    d.ImageURLs,
		AuthorID:     parseID(d.AuthorID),
		AuthorName:   d.AuthorName,
		CreatedAt:    d.CreatedAt,
	}
}

func (d *chatDoc) toEntity(id string) *entity.Chat {
	chat := &entity.Chat{
		ID:            entity.ChatID(id),
		CreatedAt:     d.CreatedAt,
		LastMessageAt: d.LastMessageAt,
	}
	if len(d.Participants) == 2 {
		chat.Participants = [2]uuid.UUID{parseID(d.Participants[0]), parseID(d.Participants[1])}
	}

	return chat
}
