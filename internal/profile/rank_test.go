package profile

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		points int
		want   Rank
	}{
		{0, RankNovice},
		{499, RankNovice},
		{500, RankApprentice},
		{1499, RankApprentice},
		{1500, RankScholar},
		{2999, RankScholar},
		{3000, RankExpert},
		{5999, RankExpert},
		{6000, RankMaster},
		{9999, RankMaster},
		{10000, RankGrandmaster},
		{50000, RankGrandmaster},
	}

	for _, tt := range tests {
		if got := RankFor(tt.points); got != tt.want {
			t.Errorf("RankFor(%d) = %s, want %s", tt.points, got, tt.want)
		}
	}
}

// Rank is monotonic non-decreasing in points.
func TestRankMonotonic(t *testing.T) {
	prev := RankNovice
	for points := 0; points <= 12000; points += 50 {
		got := RankFor(points)
		if !got.AtLeast(prev) {
			t.Fatalf("RankFor(%d) = %s, lower than previous %s", points, got, prev)
		}
		prev = got
	}
}

func TestUpdateRank(t *testing.T) {
	var s Statistics
	s.UpdateRank()
	if s.Rank != RankNovice {
		t.Errorf("zero-point rank = %s, want novice", s.Rank)
	}

	s.TotalPoints = 1600
	s.UpdateRank()
	if s.Rank != RankScholar {
		t.Errorf("1600-point rank = %s, want scholar", s.Rank)
	}
}
