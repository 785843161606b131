package draft

import "strings"

// Rule identifies one submit-time validation rule. Rules run in declaration
// order and the first failure wins, so when several are violated at once the
// user sees the earliest one.
type Rule int

const (
	RuleTitle Rule = iota + 1
	RuleKitchenCategory
	RuleCookingTime
	RuleLineCount
	RuleIngredientCount
	RuleMeasureCount
	RuleWeight
	RuleStepCount
	RuleImage
)

var ruleMessages = map[Rule]string{
	RuleTitle:           "Enter a recipe title.",
	RuleKitchenCategory: "Choose a kitchen and a category.",
	RuleCookingTime:     "Enter the cooking time.",
	RuleLineCount:       "Add at least two ingredient lines.",
	RuleIngredientCount: "Choose at least two ingredients.",
	RuleMeasureCount:    "Choose measure units for at least two ingredients.",
	RuleWeight:          "Enter the weight of the finished dish.",
	RuleStepCount:       "Describe at least two cooking steps.",
	RuleImage:           "Attach a recipe photo.",
}

// ValidationError reports the first failed rule with its user-facing notice.
type ValidationError struct {
	Rule Rule
}

func (e *ValidationError) Error() string {
	return ruleMessages[e.Rule]
}

// Validate gates submission. It runs the ordered rule set against the draft
// and returns a *ValidationError for the first rule that fails, or nil when
// the draft is submittable. Amounts are never required here; lines measured
// "to taste" have no amount at all.
func Validate(d *Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Rule: RuleTitle}
	}
	if d.KitchenID == 0 || d.CategoryID == 0 {
		return &ValidationError{Rule: RuleKitchenCategory}
	}
	if d.CookingTime == "" {
		return &ValidationError{Rule: RuleCookingTime}
	}
	if len(d.Lines) < minLines {
		return &ValidationError{Rule: RuleLineCount}
	}
	ingredients := 0
	measures := 0
	for _, l := range d.Lines {
		if l.Ingredient != nil {
			ingredients++
		}
		if l.Measure != nil {
			measures++
		}
	}
	if ingredients < minLines {
		return &ValidationError{Rule: RuleIngredientCount}
	}
	if measures < minLines {
		return &ValidationError{Rule: RuleMeasureCount}
	}
	if d.Weight == "" {
		return &ValidationError{Rule: RuleWeight}
	}
	steps := 0
	for _, s := range d.Steps {
		if strings.TrimSpace(s) != "" {
			steps++
		}
	}
	if steps < minLines {
		return &ValidationError{Rule: RuleStepCount}
	}
	if len(d.Image) == 0 {
		return &ValidationError{Rule: RuleImage}
	}
	return nil
}
