package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GameResult summarizes one simulated game for aggregate analysis
type GameResult struct {
	Net               float64 // Bankroll change over the game
	Turns             int     // Turns actually played
	Hands             int     // Hands settled, splits counted separately
	Blackjacks        int
	LongestWinStreak  int
	LongestLossStreak int
	Busted            bool  // Game ended with an empty bankroll
	Seed              int64 // Shoe seed for replay
}

// Analyzer aggregates results across simulated games. Net winnings per
// game is the primary measure; sums of squares are kept so variance
// comes out in one pass.
type Analyzer struct {
	Games   int
	SumNet  float64
	SumNet2 float64
	Values  []float64 // Per-game nets, kept for median and percentiles

	TotalTurns      int
	TotalHands      int
	TotalBlackjacks int
	BustedGames     int

	LongestWinStreak  int
	LongestLossStreak int

	BestNet   float64
	BestSeed  int64
	WorstNet  float64
	WorstSeed int64
}

// Add incorporates a finished game into the aggregate
func (a *Analyzer) Add(result GameResult) {
	net := result.Net
	a.Games++
	a.SumNet += net
	a.SumNet2 += net * net
	a.Values = append(a.Values, net)

	a.TotalTurns += result.Turns
	a.TotalHands += result.Hands
	a.TotalBlackjacks += result.Blackjacks
	if result.Busted {
		a.BustedGames++
	}
	a.LongestWinStreak = max(a.LongestWinStreak, result.LongestWinStreak)
	a.LongestLossStreak = max(a.LongestLossStreak, result.LongestLossStreak)

	if a.Games == 1 || net > a.BestNet {
		a.BestNet = net
		a.BestSeed = result.Seed
	}
	if a.Games == 1 || net < a.WorstNet {
		a.WorstNet = net
		a.WorstSeed = result.Seed
	}
}

// Mean returns the mean net winnings per game
func (a *Analyzer) Mean() float64 {
	if a.Games == 0 {
		return 0
	}
	return a.SumNet / float64(a.Games)
}

// Variance returns the sample variance of per-game net winnings
func (a *Analyzer) Variance() float64 {
	if a.Games < 2 {
		return 0
	}
	mean := a.Mean()
	return (a.SumNet2 - float64(a.Games)*mean*mean) / float64(a.Games-1)
}

// StdDev returns the sample standard deviation of per-game net winnings
func (a *Analyzer) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// StdError returns the standard error of the mean
func (a *Analyzer) StdError() float64 {
	if a.Games == 0 {
		return 0
	}
	return a.StdDev() / math.Sqrt(float64(a.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (a *Analyzer) ConfidenceInterval95() (float64, float64) {
	mean := a.Mean()
	margin := 1.96 * a.StdError()
	return mean - margin, mean + margin
}

// Median returns the median per-game net winnings
func (a *Analyzer) Median() float64 {
	if len(a.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(a.Values))
	copy(sorted, a.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the net winnings at the given percentile (0.0 to 1.0),
// interpolating between adjacent games
func (a *Analyzer) Percentile(p float64) float64 {
	if len(a.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(a.Values))
	copy(sorted, a.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// BustRate returns the fraction of games that ended with an empty bankroll
func (a *Analyzer) BustRate() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.BustedGames) / float64(a.Games)
}

// Summary renders the aggregate as a multi-line report
func (a *Analyzer) Summary() string {
	var b strings.Builder
	lo, hi := a.ConfidenceInterval95()
	fmt.Fprintf(&b, "Games:             %d\n", a.Games)
	fmt.Fprintf(&b, "Turns:             %d\n", a.TotalTurns)
	fmt.Fprintf(&b, "Hands:             %d\n", a.TotalHands)
	fmt.Fprintf(&b, "Blackjacks:        %d\n", a.TotalBlackjacks)
	fmt.Fprintf(&b, "Busted games:      %d (%.1f%%)\n", a.BustedGames, a.BustRate()*100)
	fmt.Fprintf(&b, "Mean net/game:     %+.2f (95%% CI %+.2f to %+.2f)\n", a.Mean(), lo, hi)
	fmt.Fprintf(&b, "Median net/game:   %+.2f\n", a.Median())
	fmt.Fprintf(&b, "Std dev:           %.2f\n", a.StdDev())
	fmt.Fprintf(&b, "Longest streaks:   %d wins / %d losses\n", a.LongestWinStreak, a.LongestLossStreak)
	fmt.Fprintf(&b, "Best game:         %+.2f (seed %d)\n", a.BestNet, a.BestSeed)
	fmt.Fprintf(&b, "Worst game:        %+.2f (seed %d)\n", a.WorstNet, a.WorstSeed)
	return b.String()
}
