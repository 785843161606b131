package types

// IngredientLine is one ingredient triple of a recipe submission. The client
// encodes a sequence of these as the JSON string behind the multipart
// "ingredients" field and the server decodes the same shape, so the wire
// names are shared here.
type IngredientLine struct {
	IngredientID uint   `json:"ingredient_id"`
	Amount       string `json:"amount"`
	Measure      uint   `json:"measure"`
}
