package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/solargraph/pkg/graph"
)

const testCatalog = `
- Component: Svc
  Version: V1
  Dependencies:
    next: {Type: service}
    host: {Type: context}
`

const testSolution = `
web:
  Component: Svc
  Clusters:
    V1:
      State: active
      Relationships:
        next: {Dependency: next, Element: api, Version: V1}
        host: {Dependency: host, Element: node, Version: V1}
api:
  Component: Svc
  Clusters:
    V1:
      Relationships:
        host: {Dependency: host, Element: node, Version: V1}
node:
  Component: Svc
  Clusters:
    V1: {}
`

// writeDocs writes the test documents into a temp dir, points the cache at
// another one and returns the catalog and solution paths.
func writeDocs(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	catalog := filepath.Join(dir, "catalog.yaml")
	solution := filepath.Join(dir, "shop.yaml")
	for path, data := range map[string]string{catalog: testCatalog, solution: testSolution} {
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return catalog, solution
}

// run executes the root command with args and returns what it wrote to its
// output stream.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"svg, dot", []string{"svg", "dot"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
			t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "docs/shop.yaml", "docs/shop"},
		{"out.svg", "shop.yaml", "out"},
		{"out.dot", "shop.yaml", "out"},
		{"out", "shop.yaml", "out"},
		{"out.txt", "shop.yaml", "out.txt"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestArtifactPath(t *testing.T) {
	single := artifactWriteParams{formats: []string{"svg"}, base: "shop", output: "x.svg"}
	if got := single.artifactPath("svg"); got != "x.svg" {
		t.Errorf("single format path = %q, want x.svg", got)
	}
	multi := artifactWriteParams{formats: []string{"svg", "dot"}, base: "shop", output: "x.svg"}
	if got := multi.artifactPath("dot"); got != "shop.dot" {
		t.Errorf("multi format path = %q, want shop.dot", got)
	}
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"layout", "render", "visualize", "inspect", "serve", "cache", "completion"} {
		if !strings.Contains(strings.Join(names, " "), want) {
			t.Errorf("missing command %q in %v", want, names)
		}
	}
}

func TestLayoutAndVisualize(t *testing.T) {
	catalog, solution := writeDocs(t)
	out := filepath.Join(filepath.Dir(solution), "shop.layout.json")

	if _, err := run(t, "layout", catalog, solution); err != nil {
		t.Fatalf("layout: %v", err)
	}
	l, err := graph.ReadLayoutFile(out)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}
	if len(l.Nodes) != 3 || len(l.Edges) != 3 {
		t.Fatalf("got %d nodes, %d edges", len(l.Nodes), len(l.Edges))
	}

	if _, err := run(t, "visualize", out, "-f", "svg,dot", "--tooltips"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	base := filepath.Join(filepath.Dir(solution), "shop")
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("<title>")) {
		t.Errorf("svg output = %.80s", svg)
	}
	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(dot, []byte(`"web" -> "api"`)) {
		t.Errorf("dot output missing service edge:\n%s", dot)
	}
}

func TestRender(t *testing.T) {
	catalog, solution := writeDocs(t)
	out := filepath.Join(t.TempDir(), "shop.json")

	if _, err := run(t, "render", catalog, solution, "-f", "json", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	l, err := graph.ReadLayoutFile(out)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error = %v", err)
	}
	if l.Width != 240 || l.Height != 200 {
		t.Errorf("size = %gx%g", l.Width, l.Height)
	}
}

func TestRenderErrors(t *testing.T) {
	catalog, solution := writeDocs(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", catalog, solution, "-f", "gif"}},
		{"bad viz", []string{"render", catalog, solution, "--viz", "tower"}},
		{"missing file", []string{"render", catalog, solution + ".missing"}},
		{"one argument", []string{"render", catalog}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestInspectPlain(t *testing.T) {
	catalog, solution := writeDocs(t)
	out, err := run(t, "inspect", catalog, solution, "--plain")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"web / V1 / next --> api / V1", "service", "context", "[1/3] all"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestCachePathAndClear(t *testing.T) {
	catalog, solution := writeDocs(t)

	out, err := run(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	dir := strings.TrimSpace(out)
	if want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), "solargraph"); dir != want {
		t.Errorf("cache path = %q, want %q", dir, want)
	}

	if _, err := run(t, "layout", catalog, solution, "-o", filepath.Join(t.TempDir(), "l.json")); err != nil {
		t.Fatal(err)
	}
	if n := countEntries(t, dir); n == 0 {
		t.Fatal("layout did not populate the cache")
	}
	if _, err := run(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if n := countEntries(t, dir); n != 0 {
		t.Errorf("%d entries left after clear", n)
	}
}

func countEntries(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "solargraph") {
		t.Error("bash completion does not mention the command")
	}
	if _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh: expected error")
	}
}
