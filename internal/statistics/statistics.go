package statistics

import (
	"fmt"
	"math"
	"sort"
)

// EpisodeResult is the outcome of one blackjack round.
type EpisodeResult struct {
	Reward    float64 // Final reward for the round
	Session   int     // Index of the session that dealt it
	Steps     int     // Actions taken before the round resolved
	Doubled   bool    // Round ended with a Double
	Natural   bool    // Player was dealt a natural
	Bust      bool    // Player busted
	Advantage bool    // Advantage signal on the opening observation
}

// SessionStats tracks results for one session
type SessionStats struct {
	Episodes int
	Sum      float64
	Sum2     float64
}

// Statistics accumulates simulation results
type Statistics struct {
	Episodes int
	Sum      float64
	Sum2     float64   // Sum of squares for variance calculation
	Values   []float64 // All rewards, for median/percentile calculation

	Wins     int
	Losses   int
	Pushes   int
	Busts    int
	Doubles  int
	Naturals int

	// Rewards split by the opening advantage signal
	AdvantageEpisodes int
	AdvantageReward   float64
	NeutralReward     float64
	AllReward         float64 // Total for the ledger check

	SessionResults []SessionStats
}

// Add incorporates one episode
func (s *Statistics) Add(result EpisodeResult) {
	r := result.Reward
	s.Episodes++
	s.Sum += r
	s.Sum2 += r * r
	s.Values = append(s.Values, r)

	switch {
	case r > 0:
		s.Wins++
	case r < 0:
		s.Losses++
	default:
		s.Pushes++
	}
	if result.Bust {
		s.Busts++
	}
	if result.Doubled {
		s.Doubles++
	}
	if result.Natural {
		s.Naturals++
	}

	if result.Advantage {
		s.AdvantageEpisodes++
		s.AdvantageReward += r
	} else {
		s.NeutralReward += r
	}
	s.AllReward += r

	if result.Session >= 0 {
		for len(s.SessionResults) <= result.Session {
			s.SessionResults = append(s.SessionResults, SessionStats{})
		}
		ss := &s.SessionResults[result.Session]
		ss.Episodes++
		ss.Sum += r
		ss.Sum2 += r * r
	}
}

// Merge folds other into s. Values are appended in order.
func (s *Statistics) Merge(other *Statistics) {
	s.Episodes += other.Episodes
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Busts += other.Busts
	s.Doubles += other.Doubles
	s.Naturals += other.Naturals
	s.AdvantageEpisodes += other.AdvantageEpisodes
	s.AdvantageReward += other.AdvantageReward
	s.NeutralReward += other.NeutralReward
	s.AllReward += other.AllReward

	for i, ss := range other.SessionResults {
		for len(s.SessionResults) <= i {
			s.SessionResults = append(s.SessionResults, SessionStats{})
		}
		s.SessionResults[i].Episodes += ss.Episodes
		s.SessionResults[i].Sum += ss.Sum
		s.SessionResults[i].Sum2 += ss.Sum2
	}
}

// Mean returns the average reward per episode
func (s *Statistics) Mean() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.Sum / float64(s.Episodes)
}

// Variance returns the sample variance of rewards
func (s *Statistics) Variance() float64 {
	if s.Episodes < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Episodes)*mean*mean) / float64(s.Episodes-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Episodes))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median reward
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at percentile p (0.0 to 1.0) with linear
// interpolation between neighbours
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
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

// AdvantageMean returns the mean reward of rounds opened with the advantage
// signal raised
func (s *Statistics) AdvantageMean() float64 {
	if s.AdvantageEpisodes == 0 {
		return 0
	}
	return s.AdvantageReward / float64(s.AdvantageEpisodes)
}

// NeutralMean returns the mean reward of the remaining rounds
func (s *Statistics) NeutralMean() float64 {
	n := s.Episodes - s.AdvantageEpisodes
	if n <= 0 {
		return 0
	}
	return s.NeutralReward / float64(n)
}

// SessionMean returns the mean reward for session i
func (s *Statistics) SessionMean(i int) float64 {
	if i < 0 || i >= len(s.SessionResults) || s.SessionResults[i].Episodes == 0 {
		return 0
	}
	return s.SessionResults[i].Sum / float64(s.SessionResults[i].Episodes)
}

// WinRate returns the fraction of episodes with a positive reward
func (s *Statistics) WinRate() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Episodes)
}

// IsLedgerBalanced checks the advantage/neutral split adds up
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllReward-s.AdvantageReward-s.NeutralReward) <= 1e-6
}

// Validate checks internal consistency
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllReward=%.6f, AdvantageReward=%.6f, NeutralReward=%.6f",
			s.AllReward, s.AdvantageReward, s.NeutralReward)
	}

	if s.Episodes <= 0 {
		return fmt.Errorf("invalid episode count: %d", s.Episodes)
	}

	if len(s.Values) != s.Episodes {
		return fmt.Errorf("values array length (%d) does not match episode count (%d)",
			len(s.Values), s.Episodes)
	}

	if outcomes := s.Wins + s.Losses + s.Pushes; outcomes != s.Episodes {
		return fmt.Errorf("outcomes (%d) do not match episode count (%d)", outcomes, s.Episodes)
	}

	if s.AdvantageEpisodes > s.Episodes {
		return fmt.Errorf("advantage episodes (%d) exceed episode count (%d)", s.AdvantageEpisodes, s.Episodes)
	}

	total := 0
	for _, ss := range s.SessionResults {
		total += ss.Episodes
	}
	if total != s.Episodes {
		return fmt.Errorf("session episodes total (%d) does not match episode count (%d)", total, s.Episodes)
	}

	return nil
}
