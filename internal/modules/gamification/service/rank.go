package service

// Rank names, lowest to highest.
const (
	RankMadeira  = "Madeira"
	RankBronze   = "Bronze"
	RankPrata    = "Prata"
	RankOuro     = "Ouro"
	RankDiamante = "Diamante"
)

// Rank thresholds, evaluated highest-first.
const (
	PointsDiamante = 10000
	PointsOuro     = 5000
	PointsPrata    = 2000
	PointsBronze   = 500
)

// Points awarded per event.
const (
	PointsArticlePublish   = 100
	PointsChallengePublish = 150
	PointsArticleRead      = 10

	PointsChallengeBase          = 50
	PointsChallengeIntermediario = 75
	PointsChallengeAvancado      = 100
)

// RankAndLevel derives rank and level from a cumulative point total. It is
// pure; callers must persist the result whenever points change rather than
// recomputing lazily from a possibly-stale stored rank.
func RankAndLevel(points int) (string, int) {
	rank := RankMadeira
	switch {
	case points >= PointsDiamante:
		rank = RankDiamante
	case points >= PointsOuro:
		rank = RankOuro
	case points >= PointsPrata:
		rank = RankPrata
	case points >= PointsBronze:
		rank = RankBronze
	}

	level := points/100 + 1
	return rank, level
}

// RankProgress describes how far a point total is from the next rank.
type RankProgress struct {
	Rank         string  `json:"rank"`
	NextRank     string  `json:"nextRank"`
	TargetPoints int     `json:"targetPoints"`
	Progress     float64 `json:"progress"`
}

// Progress reports the current rank and the distance to the next one, for
// the dashboard. The top rank reports itself with 100% progress.
func Progress(points int) RankProgress {
	rank, _ := RankAndLevel(points)

	next := map[string]struct {
		name   string
		target int
	}{
		RankMadeira: {RankBronze, PointsBronze},
		RankBronze:  {RankPrata, PointsPrata},
		RankPrata:   {RankOuro, PointsOuro},
		RankOuro:    {RankDiamante, PointsDiamante},
	}

	step, ok := next[rank]
	if !ok {
		return RankProgress{Rank: rank, NextRank: rank, TargetPoints: PointsDiamante, Progress: 100}
	}

	progress := float64(points) / float64(step.target) * 100
	return RankProgress{
		Rank:         rank,
		NextRank:     step.name,
		TargetPoints: step.target,
		Progress:     progress,
	}
}
