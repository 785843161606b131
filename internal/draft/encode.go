package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/platepost/backend/internal/types"
)

// Payload is the encoded multipart body for the recipe creation endpoint.
// It is opaque after encoding: nothing mutates it before the request goes out.
type Payload struct {
	Body        *bytes.Buffer
	ContentType string
}

// FlattenSteps renders the ordered cooking steps into the single text block
// the server stores: step i becomes "{i}. {text}", entries joined by a blank
// line.
func FlattenSteps(steps []string) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return strings.Join(parts, "\n \n")
}

// Lines returns the ingredient triples of the draft's complete lines. A
// valid draft has no incomplete lines left, but the filter stays as a guard
// against encoding a nil selection.
func (d *Draft) lines() []types.IngredientLine {
	out := make([]types.IngredientLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.Ingredient == nil || l.Measure == nil {
			continue
		}
		out = append(out, types.IngredientLine{
			IngredientID: uint(l.Ingredient.Value),
			Amount:       l.Amount,
			Measure:      uint(l.Measure.Value),
		})
	}
	return out
}

// Encode serializes a validated draft into the multipart payload of the
// creation endpoint. Numeric fields are stringified; the ingredient triples
// travel as one JSON-encoded field.
func Encode(d *Draft, userID string) (*Payload, error) {
	ingredients, err := json.Marshal(d.lines())
	if err != nil {
		return nil, fmt.Errorf("failed to encode ingredients: %w", err)
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct{ name, value string }{
		{"recipeName", d.Title},
		{"kitchen", strconv.Itoa(d.KitchenID)},
		{"category", strconv.Itoa(d.CategoryID)},
		{"user_id", userID},
		{"cookingTime", d.CookingTime},
		{"cookingMethod", FlattenSteps(d.Steps)},
		{"portion", strconv.Itoa(d.Portion)},
		{"rating", "0"},
		{"ingredients", string(ingredients)},
		{"weight", d.Weight},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	name := d.ImageName
	if name == "" {
		name = "recipe.png"
	}
	part, err := w.CreateFormFile("recipePicture", name)
	if err != nil {
		return nil, fmt.Errorf("failed to create picture part: %w", err)
	}
	if _, err := part.Write(d.Image); err != nil {
		return nil, fmt.Errorf("failed to write picture: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize payload: %w", err)
	}

	return &Payload{Body: body, ContentType: w.FormDataContentType()}, nil
}
