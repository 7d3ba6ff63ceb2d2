// internal/catalog/category.go
package catalog

// Category is the tier a model is grouped under in comparison tables.
// It only affects presentation.
type Category string

const (
	CategoryFlagship          Category = "Flagship"
	CategoryBalanced          Category = "Balanced"
	CategoryBudget            Category = "Budget"
	CategorySpecializedCoding Category = "Specialized Coding"
	CategoryReasoningFocus    Category = "Reasoning Focus"
	CategoryConversational    Category = "Conversational"
	CategoryOpenSource        Category = "Open Source"
	CategoryFreeTier          Category = "Free Tier"
	CategoryEnterprise        Category = "Enterprise"
)

// FallbackColor is used for categories missing from the category table.
const FallbackColor = "#888888"

// CategoryInfo holds the display color and short description of a category.
type CategoryInfo struct {
	Name        Category `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

var categories = []CategoryInfo{
	{CategoryFlagship, "#e74c3c", "Top-tier models for enterprise and complex tasks"},
	{CategoryBalanced, "#3498db", "Good performance-to-cost ratio for general use"},
	{CategoryBudget, "#27ae60", "Cost-effective options for high-volume workloads"},
	{CategorySpecializedCoding, "#9b59b6", "Optimized specifically for code generation"},
	{CategoryReasoningFocus, "#f39c12", "Step-by-step thinking for math/logic problems"},
	{CategoryConversational, "#1abc9c", "Optimized for chat and dialogue"},
	{CategoryOpenSource, "#e91e63", "Self-hostable, fully customizable"},
	{CategoryFreeTier, "#00bcd4", "No-cost options with usage limits"},
	{CategoryEnterprise, "#607d8b", "Platform offerings tied to a vendor ecosystem"},
}

// Categories returns every known category in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

func lookupCategory(c Category) (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Name == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := lookupCategory(c)
	return ok
}

// Color returns the hex display color of the category, or FallbackColor.
func (c Category) Color() string {
	if info, ok := lookupCategory(c); ok {
		return info.Color
	}
	return FallbackColor
}

// Description returns the one-line description of the category.
func (c Category) Description() string {
	info, _ := lookupCategory(c)
	return info.Description
}
