// Command deftgen is the corpus-generation CLI, wrapping instance.Generate
// + instance.Save + instance.Name behind flags.
//
// Usage:
//
//	deftgen -n 8 -iseq=false -type mixed -p 0.2 -seed 123 -out instance.bin
package main

import (
	"flag"
	"os"

	"github.com/katalvlaran/deft/instance"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("cmd", "deftgen").Logger()

	n := flag.Int("n", 4, "factor arity")
	iseq := flag.Bool("iseq", true, "generate an exchangeable pair")
	kindName := flag.String("type", "asc", "corpus kind: asc, same, mixed")
	p := flag.Float64("p", 0.2, "KindMixed probability of drawing the constant 1")
	seed := flag.Int64("seed", 123, "RNG seed")
	out := flag.String("out", "", "output instance file path (default: derived from naming scheme)")
	flag.Parse()

	kind, ok := parseKind(*kindName)
	if !ok {
		log.Error().Str("type", *kindName).Msg("unknown corpus kind")
		os.Exit(1)
	}

	f1, f2, err := instance.Generate(
		instance.WithArity(*n),
		instance.WithISeq(*iseq),
		instance.WithKind(kind),
		instance.WithMixedProb(*p),
		instance.WithSeed(*seed),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate instance")
		os.Exit(1)
	}

	name := instance.Name(*n, *iseq, kind, *p)
	path := *out
	if path == "" {
		path = name + ".bin"
	}

	w, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to create output file")
		os.Exit(1)
	}
	defer w.Close()

	written, err := instance.Save(w, f1, f2)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to save instance")
		os.Exit(1)
	}

	log.Info().Str("path", path).Str("name", name).Int64("bytes", written).Msg("wrote instance")
}

func parseKind(name string) (instance.Kind, bool) {
	switch name {
	case "asc":
		return instance.KindAsc, true
	case "same":
		return instance.KindSame, true
	case "mixed":
		return instance.KindMixed, true
	default:
		return 0, false
	}
}
