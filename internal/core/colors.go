package core

// DefaultCategoryColor is returned when a transaction references a category
// name absent from the user's category list.
const DefaultCategoryColor = "#8884d8"

// CategoryPalette is the fallback color cycle used for slices that have no
// user-defined category, such as fixed expenses.
var CategoryPalette = []string{
	"#38bdf8", // blue
	"#10b981", // green
	"#f59e0b", // yellow
	"#ef4444", // red
	"#8b5cf6", // purple
	"#f97316", // orange
	"#06b6d4", // cyan
	"#84cc16", // lime
	"#ec4899", // pink
	"#6b7280", // gray
}

// ColorFor returns the color of the first category whose name equals
// categoryName (exact, case-sensitive). Unresolved names fall back to
// DefaultCategoryColor; an empty category list is fine.
func ColorFor(categoryName string, categories []Category) string {
	for _, c := range categories {
		if c.Name == categoryName {
			return c.Color
		}
	}
	return DefaultCategoryColor
}

// PaletteColor cycles through CategoryPalette for index i.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return CategoryPalette[i%len(CategoryPalette)]
}
