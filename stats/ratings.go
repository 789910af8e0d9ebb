// Package stats derives rating figures for courses from their raw feedback
// rows. Everything here is a pure function of its input; nothing is cached
// or persisted, so the figures can never drift from the feedback table.
package stats

import (
	"fmt"
	"math"
	"sort"

	"coursefeedback/models"
)

// Summary provides average and count for a course's ratings.
type Summary struct {
	AvgRating    float64 `json:"avgRating"`
	TotalRatings int     `json:"totalRatings"`
}

// CourseWithStats is a course enriched with its rating summary, as served
// by the course list endpoint.
type CourseWithStats struct {
	models.Course
	Summary
}

// CourseDetail is a course enriched with summary, per-star distribution and
// its full feedback list (newest first), as served by the detail endpoint.
type CourseDetail struct {
	models.Course
	Summary
	RatingDistribution map[int]int       `json:"ratingDistribution"`
	Feedbacks          []models.Feedback `json:"feedbacks"`
}

// Summarize computes the rating summary for a feedback set. An empty set is
// valid and yields {0, 0}. The average is rounded to one decimal place,
// half away from zero.
func Summarize(feedbacks []models.Feedback) Summary {
	total := len(feedbacks)
	if total == 0 {
		return Summary{}
	}

	sum := 0
	for _, f := range feedbacks {
		sum += f.Rating
	}
	mean := float64(sum) / float64(total)

	return Summary{
		AvgRating:    math.Round(mean*10) / 10,
		TotalRatings: total,
	}
}

// Distribution counts feedback per star, with all five buckets always
// present. Ratings are guaranteed 1–5 by the write path; a value outside
// that range means a corrupted store or a bug upstream, so Distribution
// panics rather than mis-bucket it silently.
func Distribution(feedbacks []models.Feedback) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, f := range feedbacks {
		if f.Rating < 1 || f.Rating > 5 {
			panic(fmt.Sprintf("stats: rating %d out of range [1,5]", f.Rating))
		}
		dist[f.Rating]++
	}
	return dist
}

// CourseListView attaches a rating summary to each course. Output order
// follows the input course order.
func CourseListView(courses []models.Course, feedbacksByCourse map[uint][]models.Feedback) []CourseWithStats {
	out := make([]CourseWithStats, 0, len(courses))
	for _, course := range courses {
		out = append(out, CourseWithStats{
			Course:  course,
			Summary: Summarize(feedbacksByCourse[course.ID]),
		})
	}
	return out
}

// CourseDetailView builds the detail payload for one course. The feedback
// list is sorted by creation time descending; callers may pass it in any
// order.
func CourseDetailView(course models.Course, feedbacks []models.Feedback) CourseDetail {
	sorted := make([]models.Feedback, len(feedbacks))
	copy(sorted, feedbacks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return CourseDetail{
		Course:             course,
		Summary:            Summarize(sorted),
		RatingDistribution: Distribution(sorted),
		Feedbacks:          sorted,
	}
}
