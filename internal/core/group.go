package core

// CategoryTotal is one slice of a per-category breakdown.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// GroupByCategory partitions transactions of the given type by category and
// accumulates their values. Entries appear in first-seen order; categories
// with no matching transaction are omitted. Colors are left at
// DefaultCategoryColor; use GroupByCategoryWithColors to resolve them.
func GroupByCategory(transactions []Transaction, typ string) []CategoryTotal {
	return GroupByCategoryWithColors(transactions, typ, nil)
}

// GroupByCategoryWithColors is GroupByCategory with colors resolved against
// the user's category list.
func GroupByCategoryWithColors(transactions []Transaction, typ string, categories []Category) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range transactions {
		if !t.MatchesType(typ) {
			continue
		}
		key := t.GroupKey()
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, CategoryTotal{
				Name:  key,
				Color: ColorFor(key, categories),
			})
		}
		out[i].Value += ToAmount(t.Value)
	}
	return out
}
