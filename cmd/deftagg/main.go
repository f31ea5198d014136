// Command deftagg is the aggregation CLI, wrapping aggregate.ReadCSV +
// aggregate.Group + aggregate.Summarize and emitting one summarized row per
// surviving group. Groups containing a timeout are silently dropped per the
// timeout aggregation law, but the count dropped is logged to stderr so a
// caller isn't left guessing why the output is shorter than the input.
//
// Usage:
//
//	deftagg -in results.csv -out summary.csv
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/katalvlaran/deft/aggregate"
	"github.com/rs/zerolog"
)

// summaryHeader is the flattened shape written by deftagg: a GroupKey's
// fields followed by its Stats, one row per (n,iseq,type,algo) group.
var summaryHeader = []string{"n", "iseq", "type", "algo", "count", "min", "max", "mean", "median", "stddev"}

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "deftagg").Logger()

	in := flag.String("in", "", "input results CSV path")
	out := flag.String("out", "", "output summary CSV path")
	flag.Parse()

	if *in == "" || *out == "" {
		log.Error().Msg("usage: deftagg -in results.csv -out summary.csv")
		os.Exit(1)
	}

	inFile, err := os.Open(*in)
	if err != nil {
		log.Error().Err(err).Str("path", *in).Msg("failed to open input CSV")
		os.Exit(1)
	}
	defer inFile.Close()

	rows, err := aggregate.ReadCSV(inFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse results CSV")
		os.Exit(1)
	}

	groups := aggregate.Group(rows)
	dropped := 0
	var records [][]string
	records = append(records, summaryHeader)
	for key, groupRows := range groups {
		stats, ok := aggregate.Summarize(groupRows)
		if !ok {
			dropped++
			continue
		}
		records = append(records, []string{
			strconv.Itoa(key.N),
			strconv.FormatBool(key.ISeq),
			key.Type,
			key.Algo,
			strconv.Itoa(stats.Count),
			strconv.FormatFloat(stats.Min, 'f', -1, 64),
			strconv.FormatFloat(stats.Max, 'f', -1, 64),
			strconv.FormatFloat(stats.Mean, 'f', -1, 64),
			strconv.FormatFloat(stats.Median, 'f', -1, 64),
			strconv.FormatFloat(stats.StdDev, 'f', -1, 64),
		})
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Error().Err(err).Str("path", *out).Msg("failed to create output CSV")
		os.Exit(1)
	}
	defer outFile.Close()

	if err := writeRecords(outFile, records); err != nil {
		log.Error().Err(err).Msg("failed to write summary CSV")
		os.Exit(1)
	}

	log.Info().
		Int("groups", len(groups)).
		Int("dropped_timeout_groups", dropped).
		Int("rows_written", len(records)-1).
		Msg("aggregation complete")
}
