package review

import (
	"math"

	"glowhaus/models"
)

// Aggregate computes the mean rating and the per-star histogram over a
// set of reviews. The histogram is ordered 5 stars down to 1 and
// percentages use the total review count as denominator. An empty
// input yields nil: the caller renders nothing rather than a zeroed
// summary.
func Aggregate(reviews []models.Review) *models.RatingSummary {
	if len(reviews) == 0 {
		return nil
	}

	total := len(reviews)
	counts := make(map[int]int, 5)
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		counts[r.Rating]++
	}

	avg := float64(sum) / float64(total)

	histogram := make([]models.StarCount, 0, 5)
	for stars := 5; stars >= 1; stars-- {
		count := counts[stars]
		histogram = append(histogram, models.StarCount{
			Stars:      stars,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}

	return &models.RatingSummary{
		Average:     math.Round(avg*10) / 10,
		ReviewCount: total,
		Histogram:   histogram,
	}
}
