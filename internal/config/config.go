// Package config loads search problem instances from YAML files.
//
// A file names the problem kind and carries one matching section:
//
//	kind: grid
//	algorithm: astar
//	heuristic: octile
//	grid:
//	  conn: 8
//	  cells:
//	    - [1, 1, 0]
//	    - [0, 1, 1]
//	  start: [0, 0]
//	  goal: [2, 1]
//
// Files are decoded strictly (unknown keys are errors) and then checked
// with struct-tag validation. Semantic checks that need the domain types,
// such as a puzzle board being a permutation, are left to the adapters.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Problem kinds.
const (
	KindPuzzle = "puzzle"
	KindGrid   = "grid"
	KindGraph  = "graph"
)

// Sentinel errors.
var (
	// ErrDecode indicates a file that is not valid YAML for a File.
	ErrDecode = errors.New("config: cannot decode problem file")

	// ErrInvalid indicates a decoded file that fails validation.
	ErrInvalid = errors.New("config: invalid problem file")
)

// File is one problem instance plus its default run settings.
type File struct {
	// Kind selects the section below that describes the problem.
	Kind string `yaml:"kind" validate:"required,oneof=puzzle grid graph"`

	// Algorithm is the default algorithm name; empty means astar.
	Algorithm string `yaml:"algorithm,omitempty" validate:"omitempty,oneof=bfs dfs ucs astar greedy breadth-first depth-first uniform-cost dijkstra a* a-star best-first"`

	// Heuristic is interpreted by the problem kind; empty selects its default.
	Heuristic string `yaml:"heuristic,omitempty"`

	// MaxExpansions caps expansions per run; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions,omitempty" validate:"gte=0"`

	Puzzle *Puzzle `yaml:"puzzle,omitempty" validate:"required_if=Kind puzzle"`
	Grid   *Grid   `yaml:"grid,omitempty" validate:"required_if=Kind grid"`
	Graph  *Graph  `yaml:"graph,omitempty" validate:"required_if=Kind graph"`
}

// Puzzle describes a sliding-tile instance. Goal defaults to the canonical
// goal board of the start's side.
type Puzzle struct {
	Start [][]int `yaml:"start" validate:"required,min=2,max=4,dive,required"`
	Goal  [][]int `yaml:"goal,omitempty" validate:"omitempty,min=2,max=4,dive,required"`
}

// Grid describes a maze or terrain grid. Start and goal are [x, y].
type Grid struct {
	Cells           [][]int `yaml:"cells" validate:"required,min=1,dive,required"`
	Start           []int   `yaml:"start" validate:"len=2,dive,gte=0"`
	Goal            []int   `yaml:"goal" validate:"len=2,dive,gte=0"`
	Conn            int     `yaml:"conn,omitempty" validate:"omitempty,oneof=4 8"`
	Costs           string  `yaml:"costs,omitempty" validate:"omitempty,oneof=unit terrain"`
	LandThreshold   *int    `yaml:"land_threshold,omitempty"`
	NoCornerCutting bool    `yaml:"no_corner_cutting,omitempty"`
}

// Graph describes a weighted road map.
type Graph struct {
	Directed bool     `yaml:"directed,omitempty"`
	Vertices []Vertex `yaml:"vertices,omitempty" validate:"dive"`
	Edges    []Edge   `yaml:"edges" validate:"required,min=1,dive"`
	Start    string   `yaml:"start" validate:"required"`
	Goal     string   `yaml:"goal" validate:"required"`
}

// Vertex declares a vertex, optionally with coordinates for the
// straight-line heuristic. Vertices named only by edges need no entry.
type Vertex struct {
	ID string   `yaml:"id" validate:"required"`
	X  *float64 `yaml:"x,omitempty" validate:"required_with=Y"`
	Y  *float64 `yaml:"y,omitempty" validate:"required_with=X"`
}

// Edge is a weighted connection. Negative weights decode but are rejected
// when the route problem is built.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Weight float64 `yaml:"weight"`
}

var validate = newValidator()

// newValidator reports fields by their YAML keys.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Load reads and validates the problem file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates a problem file.
func Parse(data []byte) (*File, error) {
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Decode reads one YAML document into a File without validating it.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrDecode)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &f, nil
}

// Encode writes f as a YAML document with two-space indentation.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks struct tags and reports every failing field.
func (f *File) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// describe turns a validation failure into "grid.conn must be one of [4 8]".
func describe(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have %s elements", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s elements", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s elements", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q", field, fe.Tag())
	}
}

// fieldPath drops the root type from a namespace such as "File.grid.conn".
func fieldPath(ns string) string {
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}

	return ns
}
