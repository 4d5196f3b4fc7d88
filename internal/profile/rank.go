package profile

// Rank is the tiered label derived from cumulative points.
type Rank string

const (
	RankNovice      Rank = "novice"
	RankApprentice  Rank = "apprentice"
	RankScholar     Rank = "scholar"
	RankExpert      Rank = "expert"
	RankMaster      Rank = "master"
	RankGrandmaster Rank = "grandmaster"
)

// AllRanks returns the ranks in ascending threshold order.
func AllRanks() []Rank {
	return []Rank{RankNovice, RankApprentice, RankScholar, RankExpert, RankMaster, RankGrandmaster}
}

// PointsRequired is the minimum point total for the rank.
func (r Rank) PointsRequired() int {
	switch r {
	case RankApprentice:
		return 500
	case RankScholar:
		return 1500
	case RankExpert:
		return 3000
	case RankMaster:
		return 6000
	case RankGrandmaster:
		return 10000
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the rank.
func (r Rank) DisplayName() string {
	switch r {
	case RankNovice:
		return "Novice"
	case RankApprentice:
		return "Apprentice"
	case RankScholar:
		return "Scholar"
	case RankExpert:
		return "Expert"
	case RankMaster:
		return "Master"
	case RankGrandmaster:
		return "Grandmaster"
	default:
		return string(r)
	}
}

// Icon returns the display icon for the rank.
func (r Rank) Icon() string {
	switch r {
	case RankNovice:
		return "☆"
	case RankApprentice:
		return "★"
	case RankScholar:
		return "🎓"
	case RankExpert:
		return "👑"
	case RankMaster:
		return "💎"
	case RankGrandmaster:
		return "✨"
	default:
		return "☆"
	}
}

// index returns the ordinal position of the rank, novice first.
func (r Rank) index() int {
	for i, rank := range AllRanks() {
		if rank == r {
			return i
		}
	}
	return 0
}

// AtLeast reports whether r is the same rank as other or higher.
func (r Rank) AtLeast(other Rank) bool {
	return r.index() >= other.index()
}

// RankFor returns the rank for a point total.
func RankFor(points int) Rank {
	ranks := AllRanks()
	for i := len(ranks) - 1; i >= 0; i-- {
		if points >= ranks[i].PointsRequired() {
			return ranks[i]
		}
	}
	return RankNovice
}
