package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	flagSimTicks int
	flagSimDT    float64
	flagSimMove  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match and print its final state",
	Long: `Run the match engine without a terminal for a fixed number of ticks and
print a YAML report with the final snapshot. The same seed always gives
the same report.

Examples:
  pong sim --seed 42
  pong sim --seed 42 --ticks 6000 --move up
  pong sim --dt 0.033 --config ./pong.toml`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 600, "Number of ticks to run")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 1.0/60.0, "Seconds per tick")
	simCmd.Flags().StringVar(&flagSimMove, "move", "none", "Left paddle input held every tick: up, down or none")
}

// simOptions configures one headless run.
type simOptions struct {
	Seed      int64
	Ticks     int
	DeltaTime float64
	Movement  pong.Movement
}

// simReport is the YAML document printed by the sim command.
type simReport struct {
	Seed      int64         `yaml:"seed"`
	Ticks     int           `yaml:"ticks"`
	DeltaTime float64       `yaml:"delta_time"`
	Movement  string        `yaml:"movement"`
	Goals     []string      `yaml:"goals"`
	Bounces   int           `yaml:"paddle_hits"`
	Winner    string        `yaml:"winner,omitempty"`
	Final     string        `yaml:"final_score,omitempty"`
	Snapshot  pong.Snapshot `yaml:"snapshot"`
}

func runSim(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	movement, ok := pong.ParseMovement(flagSimMove)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown movement %q (want up, down or none)\n", flagSimMove)
		os.Exit(1)
	}
	if flagSimTicks < 0 || flagSimDT <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be >= 0 and --dt must be > 0")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report := runSimulation(cfg.Arena, simOptions{
		Seed:      seed,
		Ticks:     flagSimTicks,
		DeltaTime: flagSimDT,
		Movement:  movement,
	})
	if err := writeReport(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}
}

// runSimulation starts a seeded match and ticks it. It stops early once
// a side wins, since a stopped match ignores further ticks.
func runSimulation(arena config.ArenaConfig, o simOptions) simReport {
	g := pong.New(arena.Width, arena.Height, arena.Speed, pong.WithSeed(o.Seed))
	g.Start()

	report := simReport{
		Seed:      o.Seed,
		DeltaTime: o.DeltaTime,
		Movement:  o.Movement.String(),
		Goals:     []string{},
	}

	for i := 0; i < o.Ticks; i++ {
		res := g.Tick(o.DeltaTime, o.Movement)
		report.Ticks++

		if res.Goal != pong.SideNone {
			report.Goals = append(report.Goals, res.Goal.String())
		}
		if res.PaddleHit != pong.SideNone {
			report.Bounces++
		}
		if res.Winner != pong.SideNone {
			report.Winner = res.Winner.String()
			report.Final = fmt.Sprintf("%d-%d", res.LeftScore, res.RightScore)
			break
		}
	}

	report.Snapshot = g.Snapshot()
	return report
}

func writeReport(w io.Writer, r simReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
