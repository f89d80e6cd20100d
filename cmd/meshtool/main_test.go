package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCmdSphereStats(t *testing.T) {
	var out bytes.Buffer
	if err := cmdSphere([]string{"-r", "2", "-sectors", "4", "-stacks", "2"}, &out); err != nil {
		t.Fatalf("cmdSphere() error = %v", err)
	}
	s := out.String()
	// (2+1)*(4+1) vertices, 4 + 4 triangles
	for _, want := range []string{"Vertices:  15", "Triangles: 8", "Indices:   24"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestCmdSphereInvalid(t *testing.T) {
	var out bytes.Buffer
	if err := cmdSphere([]string{"-sectors", "2"}, &out); err == nil {
		t.Error("expected error for 2 sectors")
	}
}

func TestCmdTorusExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.obj")
	var out bytes.Buffer
	args := []string{"-outer", "3", "-inner", "0.5", "-sides", "3", "-rings", "3", "-o", path}
	if err := cmdTorus(args, &out); err != nil {
		t.Fatalf("cmdTorus() error = %v", err)
	}
	if !strings.Contains(out.String(), "Vertices:  16") {
		t.Errorf("unexpected stats:\n%s", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var verts, faces int
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	if verts != 16 {
		t.Errorf("vertex lines = %d, want 16", verts)
	}
	if faces != 18 {
		t.Errorf("face lines = %d, want 18", faces)
	}
}

func TestCmdSystemDefaults(t *testing.T) {
	var out bytes.Buffer
	if err := cmdSystem([]string{"-t", "1"}, &out); err != nil {
		t.Fatalf("cmdSystem() error = %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "11 bodies at t=1s") {
		t.Errorf("missing summary:\n%s", s)
	}
	for _, name := range []string{"sun", "earth", "moon", "saturn", "pluto"} {
		if !strings.Contains(s, name) {
			t.Errorf("missing body %s", name)
		}
	}
}

func TestCmdSystemBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "bodies:\n  - name: a\n    radius: 1\n    sectors: 8\n    stacks: 4\n    parent: nowhere\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := cmdSystem([]string{"-config", path}, &out); err == nil {
		t.Error("expected error for unknown parent")
	}
}
