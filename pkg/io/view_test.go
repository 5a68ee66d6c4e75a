package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/solargraph/pkg/errors"
	"github.com/matzehuels/solargraph/pkg/layout"
)

func TestReadView(t *testing.T) {
	want := layout.DefaultView()
	want.DX = 60
	want.Node.Width = 200
	want.Port.Diameter = 10

	got, err := ReadView(strings.NewReader("dx = 60\n\n[node]\nwidth = 200\n\n[port]\ndiameter = 10\n"))
	if err != nil {
		t.Fatalf("ReadView() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadView() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadViewInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "margin = 3\n"},
		{"syntax", "dx = \n"},
		{"negative gap", "dx = -1\n"},
		{"ports too large", "dy = 10\n[port]\ndiameter = 8\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadView(strings.NewReader(tt.input)); !errors.Is(err, errors.ErrCodeInvalidView) {
				t.Errorf("ReadView() error = %v, want INVALID_VIEW", err)
			}
		})
	}
}

func TestImportView(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "view.yaml")
	if err := os.WriteFile(yamlPath, []byte("dy: 50\nnode: {height: 30}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "view.toml")
	if err := os.WriteFile(tomlPath, []byte("dy = 50\n[node]\nheight = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := layout.DefaultView()
	want.DY = 50
	want.Node.Height = 30

	for _, p := range []string{yamlPath, tomlPath} {
		got, err := ImportView(p)
		if err != nil {
			t.Fatalf("ImportView(%s) error = %v", p, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ImportView(%s) mismatch (-want +got):\n%s", p, diff)
		}
	}

	got, err := ImportView("")
	if err != nil || got != layout.DefaultView() {
		t.Errorf("ImportView(\"\") = %+v, %v; want defaults", got, err)
	}
}
