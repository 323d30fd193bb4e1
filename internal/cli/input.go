// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mat2/internal/config"
	"github.com/katalvlaran/mat2/matrix"
	"gopkg.in/yaml.v3"
)

// entries is the number of values that make up one matrix.
const entries = 4

// readMatrices returns want matrices, taking them from positional numbers,
// then --file, then stdin, whichever comes first.
func (a *app) readMatrices(args []string, want int) ([]matrix.Matrix2x2, error) {
	switch {
	case len(args) > 0:
		a.logger.Debug("reading matrices from arguments", "want", want)

		return parseNumbers(args, want)
	case a.file != "":
		a.logger.Debug("reading matrices from file", "path", a.file, "want", want)

		return a.readFile(want)
	default:
		a.logger.Debug("reading matrices from stdin", "want", want, "prompt", a.cfg.Prompt)

		return a.readStdin(want)
	}
}

// parseNumbers turns exactly 4·want numeric arguments into matrices.
func parseNumbers(args []string, want int) ([]matrix.Matrix2x2, error) {
	if len(args) != entries*want {
		return nil, usageErrorf("expected %d numbers, got %d", entries*want, len(args))
	}

	vals := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, usageErrorf("argument %d: %v", i+1, err)
		}
		vals[i] = v
	}

	out := make([]matrix.Matrix2x2, 0, want)
	for i := 0; i < want; i++ {
		m, err := matrix.FromSlice(vals[entries*i : entries*(i+1)])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// readFile decodes the --file document and returns its first want matrices.
func (a *app) readFile(want int) ([]matrix.Matrix2x2, error) {
	data, err := os.ReadFile(a.file)
	if err != nil {
		return nil, fmt.Errorf("read matrices: %w", err)
	}
	ms, err := decodeMatrices(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.file, err)
	}
	if len(ms) < want {
		return nil, usageErrorf("%s holds %d matrices, need %d", a.file, len(ms), want)
	}
	if len(ms) > want {
		a.logger.Debug("ignoring extra matrices", "path", a.file, "extra", len(ms)-want)
	}

	return ms[:want], nil
}

// errNoMatrices reports a --file document that holds no matrix at all.
var errNoMatrices = errors.New("no matrices in document")

// fileMatrix is one {a, b, c, d} object of a --file document. Pointer
// fields tell a missing key apart from an explicit 0.
type fileMatrix struct {
	A *float64 `yaml:"a"`
	B *float64 `yaml:"b"`
	C *float64 `yaml:"c"`
	D *float64 `yaml:"d"`
}

// toMatrix converts f, failing when any of a, b, c, d is absent or null.
func (f fileMatrix) toMatrix() (matrix.Matrix2x2, error) {
	var missing []string
	for _, e := range []struct {
		key string
		v   *float64
	}{{"a", f.A}, {"b", f.B}, {"c", f.C}, {"d", f.D}} {
		if e.v == nil {
			missing = append(missing, e.key)
		}
	}
	if len(missing) > 0 {
		return matrix.Matrix2x2{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}

	return matrix.New(*f.A, *f.B, *f.C, *f.D), nil
}

// decodeMatrices accepts a YAML or JSON list of {a, b, c, d} objects, or a
// single such object. Unknown keys, missing keys and empty documents are
// rejected.
func decodeMatrices(data []byte) ([]matrix.Matrix2x2, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode matrices: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("decode matrices: %w", errNoMatrices)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var items []fileMatrix
	switch doc.Content[0].Kind {
	case yaml.SequenceNode:
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode matrices: %w", err)
		}
	case yaml.MappingNode:
		var one fileMatrix
		if err := dec.Decode(&one); err != nil {
			return nil, fmt.Errorf("decode matrices: %w", err)
		}
		items = []fileMatrix{one}
	default:
		return nil, fmt.Errorf("decode matrices: line %d: want a list or an {a, b, c, d} object",
			doc.Content[0].Line)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("decode matrices: %w", errNoMatrices)
	}

	out := make([]matrix.Matrix2x2, 0, len(items))
	for i, e := range items {
		m, err := e.toMatrix()
		if err != nil {
			return nil, fmt.Errorf("decode matrices: matrix %d: %w", i+1, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// readStdin reads want matrices from the input stream, prompting on stderr
// according to the prompt mode.
func (a *app) readStdin(want int) ([]matrix.Matrix2x2, error) {
	var prompt io.Writer
	switch a.cfg.Prompt {
	case config.PromptAlways:
		prompt = a.streams.Err
	case config.PromptAuto:
		if a.streams.interactive() {
			prompt = a.streams.Err
		}
	}

	in := bufio.NewReader(a.streams.In)
	out := make([]matrix.Matrix2x2, 0, want)
	for i := 0; i < want; i++ {
		m, err := matrix.Read(in, prompt)
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i+1, err)
		}
		out = append(out, m)
	}

	return out, nil
}
