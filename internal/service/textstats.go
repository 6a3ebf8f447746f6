package service

import (
	"strings"

	"edugen/internal/dto"
)

// readingWordsPerMinute is the fixed rate used for the reading-time estimate.
const readingWordsPerMinute = 200

// ComputeTextStats derives approximate metrics from generated text by plain
// string splitting. No linguistic analysis.
func ComputeTextStats(text string) *dto.TextStats {
	words := len(strings.Fields(text))

	sentences := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			sentences++
		}
	}

	readingTime := 0
	if words > 0 {
		readingTime = (words + readingWordsPerMinute - 1) / readingWordsPerMinute
	}

	return &dto.TextStats{
		WordCount:          words,
		SentenceCount:      sentences,
		ReadingTimeMinutes: readingTime,
	}
}
