package airdropscout

// CategoryBreakdown counts items per category, in order of first appearance.
// Items with an empty category are counted under an empty name.
func CategoryBreakdown(items []AirdropItem) []CategoryCount {
	counts := []CategoryCount{}
	index := map[Category]int{}
	for _, item := range items {
		if i, ok := index[item.Category]; ok {
			counts[i].Value++
			continue
		}
		index[item.Category] = len(counts)
		counts = append(counts, CategoryCount{Name: item.Category, Value: 1})
	}
	return counts
}
