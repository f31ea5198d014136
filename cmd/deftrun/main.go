// Command deftrun is the runner CLI: it loads one instance file, decides
// exchangeability under a chosen algorithm, and reports a single
// machine-readable line on stdout.
//
// Usage:
//
//	deftrun <instance-path> <naive|filter|deft>
//
// Diagnostics go to stderr via zerolog; stdout carries exactly one line,
// "MEAN_TIME_NS,ISEQ_BOOL", so an outer driver can pipe many invocations
// into a results CSV without scraping log noise. An unknown algorithm name
// or an unreadable instance file is a non-zero exit with an error line on
// stderr — deftrun never panics across its own process boundary (the
// exchange package still panics on a programmer error inside the library;
// this CLI validates the algorithm name up front specifically to keep that
// from ever happening here). deftrun has no internal timeout: the outer
// driver owns the 1800s wall-clock kill and the "timeout" CSV literal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/deft/exchange"
	"github.com/katalvlaran/deft/instance"
	"github.com/rs/zerolog"
)

// repeats is the fixed number of decision calls averaged to smooth out
// timer-resolution noise.
const repeats = 7

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "deftrun").Logger()

	if len(os.Args) != 3 {
		log.Error().Msg("usage: deftrun <instance-path> <naive|filter|deft>")
		os.Exit(1)
	}
	path, algoName := os.Args[1], os.Args[2]

	algo, ok := exchange.ParseAlgorithm(algoName)
	if !ok {
		log.Error().Str("algo", algoName).Msg("unknown algorithm")
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to open instance file")
		os.Exit(1)
	}
	defer f.Close()

	f1, f2, err := instance.Load(f)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to decode instance file")
		os.Exit(1)
	}

	log.Debug().
		Str("path", path).
		Str("algo", algoName).
		Int("n1", f1.Arity()).
		Int("n2", f2.Arity()).
		Msg("loaded instance")

	var total time.Duration
	var iseq bool
	for i := 0; i < repeats; i++ {
		start := time.Now()
		iseq = exchange.IsExchangeable(algo, f1.DeepCopy(), f2.DeepCopy())
		total += time.Since(start)
	}
	meanNS := total.Nanoseconds() / int64(repeats)

	fmt.Printf("%d,%t\n", meanNS, iseq)
}
