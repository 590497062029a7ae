package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/preference-elicitation/go-elicitor/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	os.Exit(run(*fixturePath))
}

// #endregion main

// #region run

func run(fixturePath string) int {
	fx, err := replay.LoadFixture(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(fx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	if fx.Description != "" {
		fmt.Printf("%s\n\n", fx.Description)
	}
	for _, r := range results {
		status := "accept"
		if !r.Accepted {
			status = "reject"
		}
		marker := "ok"
		if !r.MatchesExpected {
			marker = "MISMATCH"
		}
		fmt.Printf("[%s] %-24s %-16s %s", marker, r.Name, r.Kind, status)
		if r.Reason != "" {
			fmt.Printf(" (%s)", r.Reason)
		}
		fmt.Println()
	}

	fmt.Printf("\n%d items: %d accepted, %d rejected, %d mismatches\n",
		summary.Total, summary.Accepted, summary.Rejected, summary.Mismatches)

	if summary.Mismatches > 0 {
		return 1
	}
	return 0
}

// #endregion run
