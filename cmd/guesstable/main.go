// Command guesstable prints the guessing strategy for a multiple-choice test
// with penalties.
//
//	guesstable -k 5 -p 1 -q -0.25
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mcq-strategy/backend/internal/models"
	"github.com/mcq-strategy/backend/internal/strategy"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults := strategy.DefaultParameters()

	fs := flag.NewFlagSet("guesstable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	k := fs.Int("k", defaults.K, "number of options per question")
	p := fs.Float64("p", defaults.P, "points for a correct answer")
	q := fs.Float64("q", defaults.Q, "points for an incorrect answer (<= 0)")
	noColor := fs.Bool("no-color", false, "disable coloured output")
	unbounded := fs.Bool("unbounded", false, "skip the usual range limits")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *noColor {
		color.NoColor = true
	}

	params := strategy.Parameters{K: *k, P: *p, Q: *q}
	if err := strategy.ValidateParameters(params); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if !*unbounded {
		if err := strategy.DefaultLimits().Check(params); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return 2
		}
	}

	resp := strategy.BuildResponse(strategy.Evaluate(params))
	render(stdout, resp)
	return 0
}

func render(w io.Writer, resp *models.StrategyResponse) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	headline := resp.Message
	switch resp.Regime {
	case models.RegimeAlwaysGuess:
		headline = green(headline)
	case models.RegimeRisk:
		headline = red(headline)
	}
	fmt.Fprintln(w, headline)
	fmt.Fprintln(w, resp.Detail)
	if resp.Warning != nil {
		fmt.Fprintln(w, yellow("Warning: "+*resp.Warning))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Excluded\tRemaining\tExpected value\tDecision")
	for _, row := range resp.Rows {
		decision := red("Leave blank")
		if row.Decision == models.DecisionAnswer {
			decision = green("Answer")
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", row.Excluded, row.Remaining, row.Display, decision)
	}
	tw.Flush()
}
