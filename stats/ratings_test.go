package stats

import (
	"testing"
	"time"

	"coursefeedback/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fb(rating int) models.Feedback {
	return models.Feedback{Rating: rating}
}

func fbs(ratings ...int) []models.Feedback {
	out := make([]models.Feedback, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, fb(r))
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []int
		wantAvg   float64
		wantTotal int
	}{
		{"empty set yields zero/zero", nil, 0, 0},
		{"single rating", []int{4}, 4.0, 1},
		{"all equal ratings have no rounding drift", []int{3, 3, 3, 3}, 3.0, 4},
		{"mean 4.6667 rounds up to 4.7", []int{5, 4, 5}, 4.7, 3},
		{"mean 4.5 exact", []int{4, 5}, 4.5, 2},
		{"mean 1.3333 rounds down to 1.3", []int{1, 1, 2}, 1.3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(fbs(tt.ratings...))
			assert.Equal(t, tt.wantTotal, got.TotalRatings)
			assert.Equal(t, tt.wantAvg, got.AvgRating)
		})
	}
}

func TestSummarizeTotalAlwaysMatchesLength(t *testing.T) {
	for n := 0; n <= 10; n++ {
		ratings := make([]int, n)
		for i := range ratings {
			ratings[i] = i%5 + 1
		}
		got := Summarize(fbs(ratings...))
		assert.Equal(t, n, got.TotalRatings)
	}
}

func TestDistribution(t *testing.T) {
	got := Distribution(fbs(5, 5, 3, 1))
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 1, 4: 0, 5: 2}, got)
}

func TestDistributionEmptyHasAllBuckets(t *testing.T) {
	got := Distribution(nil)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, got)
}

func TestDistributionPanicsOnOutOfRangeRating(t *testing.T) {
	assert.Panics(t, func() { Distribution(fbs(0)) })
	assert.Panics(t, func() { Distribution(fbs(6)) })
}

func TestCourseListViewPreservesOrder(t *testing.T) {
	courses := []models.Course{}
	for _, id := range []uint{3, 1, 2} {
		course := models.Course{Name: "c"}
		course.ID = id
		courses = append(courses, course)
	}

	byCourse := map[uint][]models.Feedback{
		1: fbs(5, 5),
		2: fbs(2),
		// course 3 has no feedback at all
	}

	got := CourseListView(courses, byCourse)
	require.Len(t, got, 3)

	assert.Equal(t, uint(3), got[0].Course.ID)
	assert.Equal(t, 0, got[0].TotalRatings)
	assert.Equal(t, 0.0, got[0].AvgRating)

	assert.Equal(t, uint(1), got[1].Course.ID)
	assert.Equal(t, 2, got[1].TotalRatings)
	assert.Equal(t, 5.0, got[1].AvgRating)

	assert.Equal(t, uint(2), got[2].Course.ID)
	assert.Equal(t, 1, got[2].TotalRatings)
	assert.Equal(t, 2.0, got[2].AvgRating)
}

func TestCourseDetailViewSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f1 := models.Feedback{ID: 1, Rating: 5, CreatedAt: base}
	f2 := models.Feedback{ID: 2, Rating: 3, CreatedAt: base.Add(time.Hour)}
	f3 := models.Feedback{ID: 3, Rating: 4, CreatedAt: base.Add(2 * time.Hour)}

	// Pass in oldest-first order; the view must not rely on query ordering.
	got := CourseDetailView(models.Course{}, []models.Feedback{f1, f2, f3})

	require.Len(t, got.Feedbacks, 3)
	assert.Equal(t, uint(3), got.Feedbacks[0].ID)
	assert.Equal(t, uint(2), got.Feedbacks[1].ID)
	assert.Equal(t, uint(1), got.Feedbacks[2].ID)
}

func TestCourseDetailViewStats(t *testing.T) {
	got := CourseDetailView(models.Course{}, fbs(5, 3))

	assert.Equal(t, 4.0, got.AvgRating)
	assert.Equal(t, 2, got.TotalRatings)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 1}, got.RatingDistribution)
}

func TestCourseDetailViewDoesNotMutateInput(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []models.Feedback{
		{ID: 1, Rating: 2, CreatedAt: base},
		{ID: 2, Rating: 4, CreatedAt: base.Add(time.Hour)},
	}

	CourseDetailView(models.Course{}, in)

	assert.Equal(t, uint(1), in[0].ID)
	assert.Equal(t, uint(2), in[1].ID)
}
