// Package drawer renders pattern automata as Graphviz DOT files.
//
// The automaton of a pattern of length m has states 0..m, one per number of
// matched characters. Match transitions advance one state and are labelled
// with the character they consume; failure links follow the strict border
// array and are drawn dashed, coloured from blue to red by border depth.
package drawer

import (
	"fmt"
	"os"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1"

	"github.com/mailund/stralg-go/internal/store"
	"github.com/mailund/stralg-go/pkg/search"
)

// ErrEmptyPattern is returned when adding an empty pattern.
var ErrEmptyPattern = errors.New("pattern must not be empty")

// Drawer accumulates pattern automata and writes them as a DOT file.
type Drawer struct {
	g           graph.Graph[string, string]
	store       store.UpdatableStore[string, string]
	patterns    map[string]struct{}
	dotFileName string
}

// New creates a drawer that writes to dotFileName.
func New(dotFileName string) *Drawer {
	st := store.New[string, string]()
	return &Drawer{
		g:           graph.NewWithStore(graph.StringHash, st, graph.Directed()),
		store:       st,
		patterns:    make(map[string]struct{}),
		dotFileName: dotFileName,
	}
}

// AddPattern adds the border automaton of p to the drawing. Adding the same
// pattern twice is an error.
func (d *Drawer) AddPattern(p string) error {
	if p == "" {
		return ErrEmptyPattern
	}
	if _, ok := d.patterns[p]; ok {
		return errors.Wrapf(graph.ErrVertexAlreadyExists, "pattern %q", p)
	}

	ps := []rune(p)
	ba := search.StrictBorderArray(p)
	m := len(ps)

	state := func(i int) string {
		return fmt.Sprintf("%s/%d", p, i)
	}

	for i := 0; i <= m; i++ {
		err := d.g.AddVertex(state(i),
			graph.VertexAttribute("label", fmt.Sprintf("%d", i)),
			graph.VertexAttribute("shape", "circle"),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add state %d of %q", i, p)
		}
	}

	for i := 0; i < m; i++ {
		err := d.g.AddEdge(state(i), state(i+1),
			graph.EdgeAttribute("label", string(ps[i])),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add match transition %d of %q", i, p)
		}
	}

	err := d.addFailureLinks(p, ba, state)
	if err != nil {
		return err
	}

	// restyle the accepting state now that the automaton is complete
	d.store.UpdateVertex(state(m), func(props *graph.VertexProperties) {
		if props.Attributes == nil {
			props.Attributes = make(map[string]string)
		}
		props.Attributes["shape"] = "doublecircle"
	})

	d.patterns[p] = struct{}{}

	return nil
}

const maxRGB = 240

// addFailureLinks draws a dashed edge from every state with a non-zero
// border to the state that border leads to. Deeper borders are redder.
func (d *Drawer) addFailureLinks(p string, ba []int, state func(int) string) error {
	maxBorder := 0
	for _, b := range ba {
		if b > maxBorder {
			maxBorder = b
		}
	}
	if maxBorder == 0 {
		return nil
	}

	for i := 1; i <= len(ba); i++ {
		border := ba[i-1]
		if border == 0 {
			continue
		}

		fraction := float64(border) / float64(maxBorder)
		red := uint8(maxRGB * fraction)
		blue := uint8(maxRGB - maxRGB*fraction)
		edgeColor, err := colors.RGB(red, 0, blue)
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		err = d.g.AddEdge(state(i), state(border),
			graph.EdgeAttribute("style", "dashed"),
			graph.EdgeAttribute("constraint", "false"),
			graph.EdgeAttribute("color", edgeColor.ToHEX().String()),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add failure link %d of %q", i, p)
		}
	}

	return nil
}

// Draw writes the accumulated automata to the DOT file.
func (d *Drawer) Draw() error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.g, file, GraphAttribute("rankdir", "LR"))
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}

	return nil
}
