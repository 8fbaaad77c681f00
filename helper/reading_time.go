package helper

import "strings"

const wordsPerMinute = 200

// EstimateReadingTime returns whole minutes at 200 words per minute,
// never less than one.
func EstimateReadingTime(text string) int {
	minutes := len(strings.Fields(text)) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
