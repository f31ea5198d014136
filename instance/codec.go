// File: codec.go
// Role: binary instance-file codec. CBOR in deterministic (core-det) mode,
// following a WriteTo/ReadFrom + counting-writer shape for an opaque binary
// format.
package instance

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/deft/factor"
)

// wireFactor is the CBOR-serializable shape of a Factor: argument names in
// order, and potentials in factor.Assignments canonical order (so no
// string-keyed table round-trips over the wire).
type wireFactor struct {
	Name       string
	ArgNames   []string
	Potentials []float64
}

// wirePair is the on-disk shape Save/Load exchange.
type wirePair struct {
	F1 wireFactor
	F2 wireFactor
}

func toWire(f *factor.Factor) wireFactor {
	n := f.Arity()
	argNames := make([]string, n)
	for i, d := range f.RVs() {
		argNames[i] = d.Name
	}

	assignments := factor.Assignments(n)
	potentials := make([]float64, len(assignments))
	for i, c := range assignments {
		potentials[i] = f.Potential(c)
	}

	return wireFactor{Name: f.Name(), ArgNames: argNames, Potentials: potentials}
}

func fromWire(w wireFactor) (*factor.Factor, error) {
	n := len(w.ArgNames)
	args := make([]factor.DRV, n)
	for i, name := range w.ArgNames {
		args[i] = factor.DRV{Name: name}
	}

	assignments := factor.Assignments(n)
	entries := make([]factor.Entry, len(assignments))
	for i, c := range assignments {
		entries[i] = factor.Entry{Assignment: c, Potential: w.Potentials[i]}
	}

	return factor.New(w.Name, args, entries)
}

// countingWriter wraps an io.Writer and tracks total bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	written, err := c.w.Write(p)
	c.n += int64(written)

	return written, err
}

// Save encodes (f1, f2) to w in deterministic CBOR and returns the number
// of bytes written. The wire format is opaque: callers must depend only on
// round-trip fidelity (Load(Save(f1,f2)) reproducing f1 and f2 exactly),
// never on the byte layout.
func Save(w io.Writer, f1, f2 *factor.Factor) (int64, error) {
	pair := wirePair{F1: toWire(f1), F2: toWire(f2)}

	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEncodeInstance, err)
	}

	cw := &countingWriter{w: w}
	if err := enc.NewEncoder(cw).Encode(pair); err != nil {
		return cw.n, fmt.Errorf("%w: %v", ErrEncodeInstance, err)
	}

	return cw.n, nil
}

// Load decodes an (f1, f2) pair previously written by Save.
func Load(r io.Reader) (*factor.Factor, *factor.Factor, error) {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 1 << 20,
		MaxMapPairs:      1 << 20,
	}.DecMode()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeInstance, err)
	}

	var pair wirePair
	if err := dm.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeInstance, err)
	}

	f1, err := fromWire(pair.F1)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeInstance, err)
	}
	f2, err := fromWire(pair.F2)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDecodeInstance, err)
	}

	return f1, f2, nil
}
