package transform

import (
	"slices"
	"testing"

	"github.com/matzehuels/solargraph/pkg/dag"
)

func TestAssignLayers(t *testing.T) {
	tests := []struct {
		name         string
		ids          []string
		edges        [][2]string
		wantRows     map[string]int
		wantUnplaced []string
	}{
		{
			name:     "isolated",
			ids:      []string{"a", "b"},
			wantRows: map[string]int{"a": 0, "b": 0},
		},
		{
			name:     "chain",
			ids:      []string{"a", "b", "c"},
			edges:    [][2]string{{"a", "b"}, {"b", "c"}},
			wantRows: map[string]int{"a": 0, "b": 1, "c": 2},
		},
		{
			name:     "longest path wins",
			ids:      []string{"a", "b", "c"},
			edges:    [][2]string{{"a", "c"}, {"a", "b"}, {"b", "c"}},
			wantRows: map[string]int{"a": 0, "b": 1, "c": 2},
		},
		{
			name:     "parallel edges",
			ids:      []string{"a", "b"},
			edges:    [][2]string{{"a", "b"}, {"a", "b"}},
			wantRows: map[string]int{"a": 0, "b": 1},
		},
		{
			name:         "two cycle",
			ids:          []string{"a", "b"},
			edges:        [][2]string{{"a", "b"}, {"b", "a"}},
			wantRows:     map[string]int{"a": dag.Unplaced, "b": dag.Unplaced},
			wantUnplaced: []string{"a", "b"},
		},
		{
			name:         "cycle with descendant",
			ids:          []string{"root", "x", "y", "z"},
			edges:        [][2]string{{"root", "x"}, {"x", "y"}, {"y", "x"}, {"y", "z"}},
			wantRows:     map[string]int{"root": 0, "x": dag.Unplaced, "y": dag.Unplaced, "z": dag.Unplaced},
			wantUnplaced: []string{"x", "y", "z"},
		},
		{
			name:         "self loop",
			ids:          []string{"a"},
			edges:        [][2]string{{"a", "a"}},
			wantRows:     map[string]int{"a": dag.Unplaced},
			wantUnplaced: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.ids, tt.edges)
			unplaced := AssignLayers(g)

			if !slices.Equal(unplaced, tt.wantUnplaced) {
				t.Errorf("AssignLayers() = %v, want %v", unplaced, tt.wantUnplaced)
			}
			for id, want := range tt.wantRows {
				n, _ := g.Node(id)
				if n.Row != want {
					t.Errorf("row(%s) = %d, want %d", id, n.Row, want)
				}
			}
		})
	}
}

func TestAssignLayers_EdgesPointDown(t *testing.T) {
	g := build(t, []string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"a", "d"}, {"b", "c"}, {"d", "c"}, {"c", "e"}, {"a", "e"}})

	if unplaced := AssignLayers(g); unplaced != nil {
		t.Fatalf("AssignLayers() = %v, want nil", unplaced)
	}
	for _, e := range g.Edges() {
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		if to.Row <= from.Row {
			t.Errorf("edge %s: row %d -> %d does not point down", e.Label, from.Row, to.Row)
		}
	}
}
