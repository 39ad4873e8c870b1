package analytics

import (
	"testing"

	"github.com/lifeos-app/lifeos/internal/models"
)

func ratingSeq(skillID string, values ...int) []models.SkillRating {
	var rs []models.SkillRating
	for i, v := range values {
		rs = append(rs, models.SkillRating{
			SkillID: skillID,
			Rating:  v,
			RatedAt: "2026-08-0" + string(rune('1'+i)),
		})
	}
	return rs
}

func TestLatestRating(t *testing.T) {
	if got := LatestRating(nil); got != 0 {
		t.Errorf("LatestRating(nil) = %d, want 0", got)
	}
	if got := LatestRating(ratingSeq("s1", 3, 7)); got != 7 {
		t.Errorf("LatestRating() = %d, want 7", got)
	}
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name    string
		ratings []models.SkillRating
		want    int
	}{
		{"no ratings", nil, 0},
		{"single rating", ratingSeq("s1", 5), 0},
		{"positive growth", ratingSeq("s1", 3, 7), 4},
		{"negative growth", ratingSeq("s1", 8, 6), -2},
		{"intermediate values ignored", ratingSeq("s1", 3, 9, 1, 7), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Growth(tt.ratings); got != tt.want {
				t.Errorf("Growth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalGrowthPoints(t *testing.T) {
	skills := []models.Skill{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
	var ratings []models.SkillRating
	ratings = append(ratings, ratingSeq("s1", 3, 7)...) // growth 4
	ratings = append(ratings, ratingSeq("s2", 8, 6)...) // growth -2, clamped
	ratings = append(ratings, ratingSeq("s3", 2, 8)...) // growth 6

	if got := TotalGrowthPoints(skills, ratings); got != 10 {
		t.Errorf("TotalGrowthPoints() = %d, want 10", got)
	}
}

func TestAverageSkillLevel(t *testing.T) {
	skills := []models.Skill{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}}
	var ratings []models.SkillRating
	ratings = append(ratings, ratingSeq("s1", 3, 7)...)
	ratings = append(ratings, ratingSeq("s2", 4)...)
	ratings = append(ratings, ratingSeq("s3", 9)...)

	// latest ratings 7, 4, 9 -> mean 6.666... -> 6.7
	if got := AverageSkillLevel(skills, ratings); got != 6.7 {
		t.Errorf("AverageSkillLevel() = %v, want 6.7", got)
	}

	if got := AverageSkillLevel(nil, ratings); got != 0 {
		t.Errorf("AverageSkillLevel() with no skills = %v, want 0", got)
	}

	// unrated skills drag the average down via a 0
	if got := AverageSkillLevel([]models.Skill{{ID: "s1"}, {ID: "s4"}}, ratings); got != 3.5 {
		t.Errorf("AverageSkillLevel() with unrated skill = %v, want 3.5", got)
	}
}
