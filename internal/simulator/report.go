package simulator

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// PrintSummary writes a report of result to w
func PrintSummary(w io.Writer, result *Result, agentName string) {
	stats := result.Stats
	low, high := stats.ConfidenceInterval95()

	meanStyle := winStyle
	if stats.Mean() < 0 {
		meanStyle = lossStyle
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("=== RESULTS: %s agent ===", agentName)))
	fmt.Fprintf(w, "Episodes: %d across %d sessions (%v)\n", stats.Episodes, len(stats.SessionResults), result.Elapsed)
	fmt.Fprintf(w, "Reshuffles: %d\n", result.Reshuffles)

	fmt.Fprintln(w, headerStyle.Render("\n=== REWARD ==="))
	fmt.Fprintf(w, "Mean: %s per episode\n", meanStyle.Render(fmt.Sprintf("%.4f", stats.Mean())))
	fmt.Fprintf(w, "Std Dev: %.4f\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f]\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.2f, P50=%.2f, P95=%.2f\n",
		stats.Percentile(0.05), stats.Median(), stats.Percentile(0.95))

	fmt.Fprintln(w, headerStyle.Render("\n=== OUTCOMES ==="))
	fmt.Fprintf(w, "Wins: %s  Losses: %s  Pushes: %d\n",
		winStyle.Render(fmt.Sprint(stats.Wins)), lossStyle.Render(fmt.Sprint(stats.Losses)), stats.Pushes)
	fmt.Fprintf(w, "Win rate: %.1f%%\n", stats.WinRate()*100)
	fmt.Fprintf(w, "Busts: %d  Doubles: %d  Naturals: %d\n", stats.Busts, stats.Doubles, stats.Naturals)

	fmt.Fprintln(w, headerStyle.Render("\n=== COUNT ==="))
	advPct := 0.0
	if stats.Episodes > 0 {
		advPct = float64(stats.AdvantageEpisodes) / float64(stats.Episodes) * 100
	}
	fmt.Fprintf(w, "Advantage rounds: %d (%.1f%%), %.4f per episode\n", stats.AdvantageEpisodes, advPct, stats.AdvantageMean())
	fmt.Fprintf(w, "Neutral rounds: %d, %.4f per episode\n", stats.Episodes-stats.AdvantageEpisodes, stats.NeutralMean())

	if len(stats.SessionResults) > 1 {
		fmt.Fprintln(w, headerStyle.Render("\n=== SESSIONS ==="))
		for i, ss := range stats.SessionResults {
			fmt.Fprintf(w, "Session %d: %d episodes, %.4f per episode\n", i, ss.Episodes, stats.SessionMean(i))
		}
	}
}
