package analytics

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzerEmpty(t *testing.T) {
	a := &Analyzer{}

	if a.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty analyzer, got %f", a.Mean())
	}
	if a.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty analyzer, got %f", a.Variance())
	}
	if a.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty analyzer, got %f", a.StdError())
	}
	if a.Median() != 0 {
		t.Errorf("Expected median of 0 for empty analyzer, got %f", a.Median())
	}
	if a.BustRate() != 0 {
		t.Errorf("Expected bust rate of 0 for empty analyzer, got %f", a.BustRate())
	}
}

func TestAnalyzerSingleGame(t *testing.T) {
	a := &Analyzer{}
	a.Add(GameResult{Net: 25, Turns: 10, Hands: 11, Blackjacks: 1, Seed: 42})

	if a.Games != 1 {
		t.Errorf("Expected 1 game, got %d", a.Games)
	}
	if a.Mean() != 25 {
		t.Errorf("Expected mean of 25, got %f", a.Mean())
	}
	if a.Variance() != 0 {
		t.Errorf("Expected variance of 0 for a single game, got %f", a.Variance())
	}
	if a.BestSeed != 42 || a.WorstSeed != 42 {
		t.Errorf("Expected best and worst seed of 42, got %d and %d", a.BestSeed, a.WorstSeed)
	}
}

func TestAnalyzerMultipleGames(t *testing.T) {
	a := &Analyzer{}
	results := []GameResult{
		{Net: 10, Turns: 5, Hands: 5, LongestWinStreak: 3, LongestLossStreak: 1, Seed: 1},
		{Net: -20, Turns: 8, Hands: 9, LongestWinStreak: 1, LongestLossStreak: 5, Busted: true, Seed: 2},
		{Net: 30, Turns: 12, Hands: 12, Blackjacks: 2, LongestWinStreak: 4, LongestLossStreak: 2, Seed: 3},
		{Net: 0, Turns: 3, Hands: 3, Seed: 4},
		{Net: -10, Turns: 6, Hands: 6, LongestLossStreak: 3, Seed: 5},
	}
	for _, r := range results {
		a.Add(r)
	}

	if a.Mean() != 2 {
		t.Errorf("Expected mean of 2, got %f", a.Mean())
	}
	if a.Median() != 0 {
		t.Errorf("Expected median of 0, got %f", a.Median())
	}
	// Sample variance of {10,-20,30,0,-10} with mean 2 is 370
	if math.Abs(a.Variance()-370) > 1e-9 {
		t.Errorf("Expected variance of 370, got %f", a.Variance())
	}
	if a.TotalTurns != 34 || a.TotalHands != 35 {
		t.Errorf("Expected 34 turns and 35 hands, got %d and %d", a.TotalTurns, a.TotalHands)
	}
	if a.TotalBlackjacks != 2 {
		t.Errorf("Expected 2 blackjacks, got %d", a.TotalBlackjacks)
	}
	if a.BustedGames != 1 || a.BustRate() != 0.2 {
		t.Errorf("Expected 1 busted game (rate 0.2), got %d (%f)", a.BustedGames, a.BustRate())
	}
	if a.BestNet != 30 || a.BestSeed != 3 {
		t.Errorf("Expected best game of 30 with seed 3, got %f with seed %d", a.BestNet, a.BestSeed)
	}
	if a.WorstNet != -20 || a.WorstSeed != 2 {
		t.Errorf("Expected worst game of -20 with seed 2, got %f with seed %d", a.WorstNet, a.WorstSeed)
	}
	if a.LongestWinStreak != 4 || a.LongestLossStreak != 5 {
		t.Errorf("Expected longest streaks of 4 wins and 5 losses, got %d and %d", a.LongestWinStreak, a.LongestLossStreak)
	}

	lo, hi := a.ConfidenceInterval95()
	if lo >= a.Mean() || hi <= a.Mean() {
		t.Errorf("Expected confidence interval to bracket the mean, got [%f, %f]", lo, hi)
	}
}

func TestAnalyzerPercentile(t *testing.T) {
	a := &Analyzer{}
	for _, net := range []float64{0, 10, 20, 30, 40} {
		a.Add(GameResult{Net: net})
	}

	if a.Percentile(0) != 0 {
		t.Errorf("Expected 0th percentile of 0, got %f", a.Percentile(0))
	}
	if a.Percentile(0.5) != 20 {
		t.Errorf("Expected 50th percentile of 20, got %f", a.Percentile(0.5))
	}
	if a.Percentile(1) != 40 {
		t.Errorf("Expected 100th percentile of 40, got %f", a.Percentile(1))
	}
	if a.Percentile(0.25) != 10 {
		t.Errorf("Expected 25th percentile of 10, got %f", a.Percentile(0.25))
	}
}

func TestAnalyzerSummary(t *testing.T) {
	a := &Analyzer{}
	a.Add(GameResult{Net: 25, Turns: 10, Hands: 11, Seed: 42})

	summary := a.Summary()
	if !strings.Contains(summary, "Games:             1") {
		t.Errorf("Expected summary to report the game count, got:\n%s", summary)
	}
	if !strings.Contains(summary, "seed 42") {
		t.Errorf("Expected summary to report the seed, got:\n%s", summary)
	}
}
