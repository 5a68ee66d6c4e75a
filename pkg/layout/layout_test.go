package layout

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/solargraph/pkg/layout/path"
	"github.com/matzehuels/solargraph/pkg/model"
)

// rel is a relationship fixture: from element, relationship name, dependency
// slot, target element. Every element has one cluster "V1".
type rel struct{ from, name, dep, to string }

func boxCatalog() model.Catalog {
	c := model.NewComponent("Box", "V1", "")
	_ = c.AddDependency(&model.Dependency{Dependency: "host", Type: model.TypeContext, Component: "Box", Version: "V1"})
	_ = c.AddDependency(&model.Dependency{Dependency: "call", Type: model.TypeService, Component: "Box", Version: "V1"})
	return model.Catalog{c}
}

func boxSolution(elements []string, rels ...rel) *model.Solution {
	s := &model.Solution{Elements: map[string]*model.Element{}}
	for _, name := range elements {
		s.Elements[name] = &model.Element{
			Element:   name,
			Component: "Box",
			Clusters: map[string]*model.Cluster{
				"V1": {Version: "V1", State: "running", Relationships: map[string]*model.Relationship{}},
			},
		}
	}
	for _, r := range rels {
		s.Elements[r.from].Clusters["V1"].Relationships[r.name] = &model.Relationship{
			Relationship: r.name, Dependency: r.dep, Element: r.to, Version: "V1",
		}
	}
	return s
}

// gridSolution places nine elements on a 3x3 grid and connects them so that
// every edge type occurs at least once.
func gridSolution() *model.Solution {
	return boxSolution(
		[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
		rel{"a", "host-d", "host", "d"}, // immediate-below
		rel{"b", "host-e", "host", "e"}, // immediate-below
		rel{"c", "host-f", "host", "f"}, // immediate-below
		rel{"d", "host-g", "host", "g"}, // immediate-below
		rel{"e", "host-h", "host", "h"}, // immediate-below
		rel{"f", "host-i", "host", "i"}, // immediate-below
		rel{"c", "host-e", "host", "e"}, // immediate-left
		rel{"a", "host-e", "host", "e"}, // immediate-right
		rel{"c", "host-g", "host", "g"}, // bottom-left
		rel{"b", "host-h", "host", "h"}, // below
		rel{"a", "host-h", "host", "h"}, // bottom-right
		rel{"i", "call-d", "call", "d"}, // top-left
		rel{"h", "call-e", "call", "e"}, // above
		rel{"i", "call-f", "call", "f"}, // above
		rel{"g", "call-f", "call", "f"}, // top-right
		rel{"b", "call-c", "call", "c"}, // top-right
	)
}

func mustBuild(t *testing.T, sol *model.Solution, opts ...Option) *Graph {
	t.Helper()
	g, err := Build(boxCatalog(), sol, DefaultView(), opts...)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestBuild_SingleNode(t *testing.T) {
	catalog := model.Catalog{model.NewComponent("App", "V1.0.0", "")}
	sol := &model.Solution{Elements: map[string]*model.Element{
		"app1": {Element: "app1", Component: "App", Clusters: map[string]*model.Cluster{
			"V1.0.0": {Version: "V1.0.0"},
		}},
	}}
	view := DefaultView()

	g, err := Build(catalog, sol, view)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(g.Nodes) != 1 || g.Nodes[0].Row != 0 || g.Nodes[0].Column != 0 {
		t.Fatalf("Nodes = %+v, want one node at (0, 0)", g.Nodes)
	}
	if len(g.Edges) != 0 {
		t.Errorf("Edges = %d, want 0", len(g.Edges))
	}
	if g.Width != view.DX {
		t.Errorf("Width = %g, want %g", g.Width, view.DX)
	}
	if want := view.DY + view.Node.Height + view.DY; g.Height != want {
		t.Errorf("Height = %g, want %g", g.Height, want)
	}
	if g.RowCount() != 1 || g.ColumnCount() != 1 {
		t.Errorf("grid = %dx%d, want 1x1", g.RowCount(), g.ColumnCount())
	}
}

func TestBuild_ServiceChain(t *testing.T) {
	g := mustBuild(t, boxSolution([]string{"A", "B", "C"},
		rel{"A", "next", "call", "B"},
		rel{"B", "next", "call", "C"},
	))

	for i, name := range []string{"A", "B", "C"} {
		n, ok := g.Node(name)
		if !ok {
			t.Fatalf("node %s missing", name)
		}
		if n.Row != 0 || n.Column != Coord(i) {
			t.Errorf("%s at (%d, %d), want (0, %d)", name, n.Row, n.Column, i)
		}
	}
	if len(g.Edges) != 2 {
		t.Fatalf("Edges = %d, want 2", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Type != TopRight {
			t.Errorf("%s: Type = %s, want top-right", e.Tag, e.Type)
		}
		if e.Category != Service {
			t.Errorf("%s: Category = %s, want service", e.Tag, e.Category)
		}
	}
}

func TestBuild_ContextCycle(t *testing.T) {
	_, err := Build(boxCatalog(), boxSolution([]string{"A", "B"},
		rel{"A", "peer", "host", "B"},
		rel{"B", "peer", "host", "A"},
	), DefaultView())

	if !errors.Is(err, ErrCycle) {
		t.Fatalf("Build() error = %v, want ErrCycle", err)
	}
	var cerr *CycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("Build() error %T is not a *CycleError", err)
	}
	if cerr.Kind != Context {
		t.Errorf("Kind = %s, want context", cerr.Kind)
	}
	if diff := cmp.Diff([]string{"A", "B"}, cerr.Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B / V1 / peer"}, cerr.Edges); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_ServiceSelfLoop(t *testing.T) {
	_, err := Build(boxCatalog(), boxSolution([]string{"A"},
		rel{"A", "self", "call", "A"},
	), DefaultView())

	var cerr *CycleError
	if !errors.As(err, &cerr) || cerr.Kind != Service {
		t.Fatalf("Build() error = %v, want service CycleError", err)
	}
}

func TestBuild_References(t *testing.T) {
	tests := []struct {
		name     string
		sol      func() *model.Solution
		opts     []Option
		wantWhat string
		wantName string
	}{
		{
			name: "missing element",
			sol: func() *model.Solution {
				return boxSolution([]string{"app1"}, rel{"app1", "db", "call", "ghost"})
			},
			wantWhat: "element",
			wantName: "ghost",
		},
		{
			name: "missing cluster",
			sol: func() *model.Solution {
				s := boxSolution([]string{"app1", "db"}, rel{"app1", "db", "call", "db"})
				s.Elements["app1"].Clusters["V1"].Relationships["db"].Version = "V9"
				return s
			},
			wantWhat: "cluster",
			wantName: "db / V9",
		},
		{
			name: "missing dependency",
			sol: func() *model.Solution {
				return boxSolution([]string{"app1", "db"}, rel{"app1", "db", "storage", "db"})
			},
			wantWhat: "dependency",
			wantName: "storage",
		},
		{
			name: "strict ignores relationship type",
			sol: func() *model.Solution {
				s := boxSolution([]string{"app1", "db"}, rel{"app1", "db", "storage", "db"})
				s.Elements["app1"].Clusters["V1"].Relationships["db"].Type = model.TypeService
				return s
			},
			opts:     []Option{WithStrictKinds()},
			wantWhat: "dependency",
			wantName: "storage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(boxCatalog(), tt.sol(), DefaultView(), tt.opts...)
			if !errors.Is(err, ErrUnresolvedReference) {
				t.Fatalf("Build() error = %v, want ErrUnresolvedReference", err)
			}
			var rerr *ReferenceError
			if !errors.As(err, &rerr) {
				t.Fatalf("Build() error %T is not a *ReferenceError", err)
			}
			if rerr.What != tt.wantWhat || rerr.Name != tt.wantName {
				t.Errorf("ReferenceError = %s %q, want %s %q", rerr.What, rerr.Name, tt.wantWhat, tt.wantName)
			}
			if rerr.From != "app1 / V1 / db" {
				t.Errorf("From = %q, want %q", rerr.From, "app1 / V1 / db")
			}
			if !strings.Contains(err.Error(), tt.wantName) {
				t.Errorf("Error() = %q does not name %q", err.Error(), tt.wantName)
			}
		})
	}
}

func TestBuild_NodesKeyedByElementName(t *testing.T) {
	sol := boxSolution([]string{"a", "b"}, rel{"a", "host-b", "host", "b"})
	sol.Elements["entry-b"] = sol.Elements["b"]
	delete(sol.Elements, "b")

	g := mustBuild(t, sol)
	if _, ok := g.Node("b"); !ok {
		t.Fatal("node b missing")
	}
	if _, ok := g.Node("entry-b"); ok {
		t.Error("node named after its solution key")
	}
	if len(g.Edges) != 1 || g.Edges[0].Destination.Node.Name != "b" {
		t.Errorf("edges = %v, want one edge into b", g.Edges)
	}

	sol.Elements["b"] = &model.Element{Element: "b", Component: "Box"}
	if _, err := Build(boxCatalog(), sol, DefaultView()); !errors.Is(err, ErrDuplicateElement) {
		t.Errorf("Build() error = %v, want ErrDuplicateElement", err)
	}
}

func TestBuild_RelationshipTypeFallback(t *testing.T) {
	sol := boxSolution([]string{"app1", "db"}, rel{"app1", "db", "storage", "db"})
	sol.Elements["app1"].Clusters["V1"].Relationships["db"].Type = model.TypeContext

	g := mustBuild(t, sol)

	if len(g.Edges) != 1 || g.Edges[0].Category != Context {
		t.Fatalf("Edges = %+v, want one context edge", g.Edges)
	}
	if n, _ := g.Node("db"); n.Row != 1 {
		t.Errorf("db row = %d, want 1", n.Row)
	}
}

func TestBuild_SingleClusterVersionDefault(t *testing.T) {
	sol := boxSolution([]string{"app1", "db"}, rel{"app1", "db", "call", "db"})
	sol.Elements["app1"].Clusters["V1"].Relationships["db"].Version = ""

	g := mustBuild(t, sol)
	if got := g.Edges[0].Destination.Name(); got != "db / V1" {
		t.Errorf("destination = %q, want db / V1", got)
	}
}

func TestBuild_InvalidView(t *testing.T) {
	view := DefaultView()
	view.DY = view.Port.Diameter

	if _, err := Build(boxCatalog(), boxSolution([]string{"a"}), view); !errors.Is(err, ErrInvalidView) {
		t.Errorf("Build() error = %v, want ErrInvalidView", err)
	}
}

func TestBuild_TooLarge(t *testing.T) {
	sol := boxSolution([]string{"a", "b", "c"},
		rel{"a", "x", "call", "b"},
		rel{"a", "y", "call", "c"},
	)
	if _, err := Build(boxCatalog(), sol, DefaultView(), WithMaxEdges(1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Build() error = %v, want ErrTooLarge", err)
	}
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(nil, nil, DefaultView())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("empty solution produced %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	if g.Width != g.View.DX || g.Height != g.View.DY {
		t.Errorf("size = %gx%g, want %gx%g", g.Width, g.Height, g.View.DX, g.View.DY)
	}
}

func TestBuild_GridTypes(t *testing.T) {
	g := mustBuild(t, gridSolution())

	want := map[string][2]int{
		"a": {0, 0}, "b": {0, 1}, "c": {0, 2},
		"d": {1, 0}, "e": {1, 1}, "f": {1, 2},
		"g": {2, 0}, "h": {2, 1}, "i": {2, 2},
	}
	for name, rc := range want {
		n, _ := g.Node(name)
		if int(n.Row) != rc[0] || int(n.Column) != rc[1] {
			t.Errorf("%s at (%d, %d), want (%d, %d)", name, n.Row, n.Column, rc[0], rc[1])
		}
	}

	types := map[string]EdgeType{
		"a / V1 / host-d --> d / V1": ImmediateBelow,
		"c / V1 / host-e --> e / V1": ImmediateLeft,
		"a / V1 / host-e --> e / V1": ImmediateRight,
		"c / V1 / host-g --> g / V1": BottomLeft,
		"b / V1 / host-h --> h / V1": Below,
		"a / V1 / host-h --> h / V1": BottomRight,
		"i / V1 / call-d --> d / V1": TopLeft,
		"h / V1 / call-e --> e / V1": Above,
		"b / V1 / call-c --> c / V1": TopRight,
	}
	seen := make(map[EdgeType]bool)
	for _, e := range g.Edges {
		seen[e.Type] = true
		if want, ok := types[e.Tag]; ok && e.Type != want {
			t.Errorf("%s: Type = %s, want %s", e.Tag, e.Type, want)
		}
	}
	for et := TopLeft; et <= BottomRight; et++ {
		if !seen[et] {
			t.Errorf("edge type %s not exercised", et)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first := summarize(mustBuild(t, gridSolution()))
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, summarize(mustBuild(t, gridSolution()))); diff != "" {
			t.Fatalf("run %d differs (-first +run):\n%s", i, diff)
		}
	}
}

func summarize(g *Graph) []string {
	var out []string
	for _, n := range g.Nodes {
		out = append(out, fmt.Sprintf("node %s %d %d", n.Name, n.Row, n.Column))
	}
	for _, e := range g.Edges {
		out = append(out, fmt.Sprintf("edge %s %s %d %d %d %s", e.Tag, e.Type, e.Channel1, e.Channel2, e.Channel3, e.Path.SVG()))
	}
	out = append(out, fmt.Sprint(g.Layers, g.Columns, g.Width, g.Height))
	return out
}

func TestBuild_PortIndices(t *testing.T) {
	g := mustBuild(t, gridSolution())

	for _, n := range g.Nodes {
		if !n.Row.Placed() || !n.Column.Placed() {
			t.Errorf("%s left unplaced at (%d, %d)", n.Name, n.Row, n.Column)
		}
		var src, dst []int
		for _, s := range n.Sources {
			src = append(src, s.Index)
		}
		for _, d := range n.Destinations {
			dst = append(dst, d.Index)
		}
		slices.Sort(src)
		slices.Sort(dst)
		for i := range src {
			if src[i] != i {
				t.Errorf("%s: source indices %v are not a permutation", n.Name, src)
				break
			}
		}
		for i := range dst {
			if dst[i] != i {
				t.Errorf("%s: destination indices %v are not a permutation", n.Name, dst)
				break
			}
		}
		if !slices.IsSortedFunc(n.Sources, func(a, b *Source) int { return strings.Compare(a.Tag, b.Tag) }) {
			t.Errorf("%s: sources not sorted by tag", n.Name)
		}
	}
}

func TestBuild_EqualTagsKeepClusterOrder(t *testing.T) {
	var catalog model.Catalog
	for _, v := range []string{"V1", "V2"} {
		c := model.NewComponent("Box", v, "")
		_ = c.AddDependency(&model.Dependency{Dependency: "host", Type: model.TypeContext, Component: "Box", Version: "V1"})
		catalog = append(catalog, c)
	}
	db := func() *model.Relationship {
		return &model.Relationship{Relationship: "db", Dependency: "host", Element: "b", Version: "V1"}
	}
	sol := &model.Solution{Elements: map[string]*model.Element{
		"a": {Element: "a", Component: "Box", Clusters: map[string]*model.Cluster{
			"V2": {Version: "V2", Relationships: map[string]*model.Relationship{"db": db()}},
			"V1": {Version: "V1", Relationships: map[string]*model.Relationship{"db": db()}},
		}},
		"b": {Element: "b", Component: "Box", Clusters: map[string]*model.Cluster{
			"V1": {Version: "V1"},
		}},
	}}

	g, err := Build(catalog, sol, DefaultView())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	a, _ := g.Node("a")
	var got []string
	for _, s := range a.Sources {
		got = append(got, fmt.Sprintf("%s=%d", s.Name(), s.Index))
	}
	if diff := cmp.Diff([]string{"a / V1 / db=0", "a / V2 / db=1"}, got); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}

	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(g.Edges))
	}
	if g.Edges[0].Channel1 == g.Edges[1].Channel1 {
		t.Errorf("both edges claimed lane %d", g.Edges[0].Channel1)
	}
}

func TestBuild_ChannelsDistinct(t *testing.T) {
	g := mustBuild(t, gridSolution())

	type lane struct{ gap, ch int }
	rowLanes := make(map[lane]string)
	colLanes := make(map[lane]string)
	take := func(m map[lane]string, l lane, tag string, counters []int) {
		if l.ch < 0 || l.ch >= counters[l.gap] {
			t.Errorf("%s: lane %d outside counter %d of gap %d", tag, l.ch, counters[l.gap], l.gap)
		}
		if other, ok := m[l]; ok {
			t.Errorf("%s and %s share lane %d of gap %d", tag, other, l.ch, l.gap)
		}
		m[l] = tag
	}

	for _, e := range g.Edges {
		take(rowLanes, lane{e.SrcRow + 1, e.Channel1}, e.Tag, g.Layers)
		if e.Type.Immediate() {
			if e.Channel2 != -1 || e.Channel3 != -1 {
				t.Errorf("%s: immediate edge claimed column or destination lanes", e.Tag)
			}
			continue
		}
		gap := e.SrcCol + 1
		if e.Type.LeftColumnGap() {
			gap = e.SrcCol
		}
		take(colLanes, lane{gap, e.Channel2}, e.Tag, g.Columns)
		take(rowLanes, lane{e.DestRow, e.Channel3}, e.Tag, g.Layers)
	}
}

func TestBuild_PathEndpoints(t *testing.T) {
	g := mustBuild(t, gridSolution())

	for _, e := range g.Edges {
		if e.Path.Start() != e.Source.Position {
			t.Errorf("%s: path starts at %v, want %v", e.Tag, e.Path.Start(), e.Source.Position)
		}
		if e.Path.End() != e.Destination.Position {
			t.Errorf("%s: path ends at %v, want %v", e.Tag, e.Path.End(), e.Destination.Position)
		}
	}
}

// TestBuild_SweepsMatchTurns checks every arc against the turn it makes: a
// clockwise turn on screen (y down) must carry sweep flag 1.
func TestBuild_SweepsMatchTurns(t *testing.T) {
	g := mustBuild(t, gridSolution())

	for _, e := range g.Edges {
		segs := e.Path.Segments()
		if segs[len(segs)-1].Op == path.OpCubic {
			if e.Type != ImmediateBelow {
				t.Errorf("%s: cubic path for %s", e.Tag, e.Type)
			}
			continue
		}

		headingRight := e.Destination.Position.X > e.Source.Position.X
		if diff := cmp.Diff(Sweeps(e.Type, headingRight), e.Path.Sweeps()); diff != "" {
			t.Errorf("%s (%s): sweeps mismatch (-table +path):\n%s", e.Tag, e.Type, diff)
		}

		for i, s := range segs {
			if s.Op != path.OpArc {
				continue
			}
			in := direction(segs[i-2].To, segs[i-1].To)
			out := direction(s.To, segs[i+1].To)
			cw := in.X*out.Y-in.Y*out.X > 0
			if cw != s.Sweep {
				t.Errorf("%s (%s): arc %d sweep = %v, turn is clockwise = %v", e.Tag, e.Type, i, s.Sweep, cw)
			}
		}
	}
}

func direction(from, to path.Point) path.Point {
	sgn := func(v float64) float64 {
		switch {
		case v > 1e-9:
			return 1
		case v < -1e-9:
			return -1
		}
		return 0
	}
	return path.Point{X: sgn(to.X - from.X), Y: sgn(to.Y - from.Y)}
}

func TestImmediateBelowCurve(t *testing.T) {
	g := mustBuild(t, boxSolution([]string{"app", "server"}, rel{"app", "host", "host", "server"}))

	e := g.Edges[0]
	if e.Type != ImmediateBelow {
		t.Fatalf("Type = %s, want immediate-below", e.Type)
	}
	if got, want := e.Path.SVG(), "M 120 84 C 120,100 120,100 120,116"; got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestDimensionsMonotonic(t *testing.T) {
	v := DefaultView()
	for rows := 0; rows < 5; rows++ {
		for cols := 1; cols < 5; cols++ {
			w, h := dimensions(v, rows, cols)
			w2, _ := dimensions(v, rows, cols+1)
			_, h2 := dimensions(v, rows+1, cols)
			if math.Abs(w2-w-(v.Node.Width+v.DX)) > 1e-9 {
				t.Errorf("width(%d)->width(%d) grew by %g", cols, cols+1, w2-w)
			}
			if math.Abs(h2-h-(v.Node.Height+v.DY)) > 1e-9 {
				t.Errorf("height(%d)->height(%d) grew by %g", rows, rows+1, h2-h)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		srcRow, srcCol, destRow, destCol int
		want                             EdgeType
	}{
		{1, 1, 0, 0, TopLeft},
		{1, 1, 1, 0, TopLeft},
		{1, 1, 0, 1, Above},
		{1, 1, 1, 2, TopRight},
		{1, 1, 2, 0, ImmediateLeft},
		{1, 1, 2, 1, ImmediateBelow},
		{1, 1, 2, 3, ImmediateRight},
		{1, 1, 3, 0, BottomLeft},
		{1, 1, 4, 1, Below},
		{1, 1, 3, 2, BottomRight},
	}
	for _, tt := range tests {
		if got := classify(tt.srcRow, tt.srcCol, tt.destRow, tt.destCol); got != tt.want {
			t.Errorf("classify(%d,%d -> %d,%d) = %s, want %s", tt.srcRow, tt.srcCol, tt.destRow, tt.destCol, got, tt.want)
		}
	}
}

func TestEdgeTypeText(t *testing.T) {
	for et := TopLeft; et <= BottomRight; et++ {
		b, _ := et.MarshalText()
		var back EdgeType
		if err := back.UnmarshalText(b); err != nil || back != et {
			t.Errorf("%s did not survive text encoding: %v", et, err)
		}
	}
	if _, err := ParseEdgeType("sideways"); err == nil {
		t.Error("ParseEdgeType(sideways) = nil error")
	}
	if _, err := ParseKind("network"); err == nil {
		t.Error("ParseKind(network) = nil error")
	}
}

func TestDuplicateCatalogLastWins(t *testing.T) {
	first := model.NewComponent("Box", "V1", "")
	_ = first.AddDependency(&model.Dependency{Dependency: "link", Type: model.TypeContext})
	second := model.NewComponent("Box", "V1", "")
	_ = second.AddDependency(&model.Dependency{Dependency: "link", Type: model.TypeService})

	g, err := Build(model.Catalog{first, second}, boxSolution([]string{"a", "b"}, rel{"a", "link", "link", "b"}), DefaultView())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Edges[0].Category != Service {
		t.Errorf("Category = %s, want service from the last catalog entry", g.Edges[0].Category)
	}
}
