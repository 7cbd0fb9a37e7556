package util

import "strings"

// FormatCategory turns a raw provider category code into a display label:
// lower-case, split on underscores, capitalize each word.
// "FOOD_AND_DRINK" becomes "Food And Drink".
func FormatCategory(raw string) string {
	words := strings.Split(strings.ToLower(raw), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
