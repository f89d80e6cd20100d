package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoadSources(t *testing.T) {
	fsys := fstest.MapFS{
		"planet.vert": {Data: []byte("void main() {}")},
		"planet.frag": {Data: []byte("out vec4 c;")},
	}

	vs, fs, err := LoadSources(fsys, "planet.vert", "planet.frag")
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if vs != "void main() {}" || fs != "out vec4 c;" {
		t.Errorf("got %q / %q", vs, fs)
	}

	if _, _, err := LoadSources(fsys, "planet.vert", "missing.frag"); err == nil {
		t.Error("expected error for missing fragment shader")
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := withProgram(&CompileError{Stage: StageFragment, Log: "0:12: syntax error\x00"}, "orbit")

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not a *CompileError", err)
	}
	if ce.Program != "orbit" || ce.Stage != StageFragment {
		t.Errorf("Program/Stage = %q/%q", ce.Program, ce.Stage)
	}
	if got, want := err.Error(), "shader orbit: fragment: 0:12: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// fakeLibrary returns a library whose compiler hands out increasing ids and
// fails for sources containing "broken".
func fakeLibrary(fsys fstest.MapFS) (*Library, *[]uint32) {
	l := NewLibrary(fsys)
	var released []uint32
	next := uint32(0)
	l.compile = func(vs, fs string) (uint32, error) {
		if strings.Contains(vs, "broken") {
			return 0, &CompileError{Stage: StageVertex, Log: "broken"}
		}
		next++
		return next, nil
	}
	l.release = func(id uint32) { released = append(released, id) }
	return l, &released
}

func TestLibraryCompilesOnce(t *testing.T) {
	fsys := fstest.MapFS{
		"orbit.vert": {Data: []byte("v")},
		"orbit.frag": {Data: []byte("f")},
	}
	l, _ := fakeLibrary(fsys)
	def := Definition{Name: "orbit", Vertex: "orbit.vert", Fragment: "orbit.frag"}

	a, err := l.Add(def)
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Add(def)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a.ID() != 1 {
		t.Errorf("second Add should return the same program, got ids %d and %d", a.ID(), b.ID())
	}
	if got, ok := l.Get("orbit"); !ok || got != a {
		t.Error("Get should return the registered program")
	}
}

func TestLibraryReload(t *testing.T) {
	fsys := fstest.MapFS{
		"p.vert": {Data: []byte("v1")},
		"p.frag": {Data: []byte("f")},
	}
	l, released := fakeLibrary(fsys)
	p, err := l.Add(Definition{Name: "p", Vertex: "p.vert", Fragment: "p.frag"})
	if err != nil {
		t.Fatal(err)
	}

	if err := l.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if p.ID() != 2 {
		t.Errorf("after reload id = %d, want 2", p.ID())
	}
	if len(*released) != 1 || (*released)[0] != 1 {
		t.Errorf("released = %v, want [1]", *released)
	}

	// A broken edit keeps the working program.
	fsys["p.vert"] = &fstest.MapFile{Data: []byte("broken")}
	err = l.Reload()
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Program != "p" {
		t.Fatalf("Reload error = %v, want CompileError for p", err)
	}
	if p.ID() != 2 {
		t.Errorf("failed reload changed id to %d", p.ID())
	}

	l.Delete()
	if p.ID() != 0 {
		t.Error("Delete should clear program handles")
	}
	if len(*released) != 2 {
		t.Errorf("released = %v, want two handles", *released)
	}
	if names := l.Names(); len(names) != 0 {
		t.Errorf("Names after Delete = %v", names)
	}
}

func TestLibraryAddMissingSource(t *testing.T) {
	l, _ := fakeLibrary(fstest.MapFS{})
	if _, err := l.Add(Definition{Name: "sky", Vertex: "sky.vert", Fragment: "sky.frag"}); err == nil {
		t.Error("expected error for missing sources")
	}
	if _, ok := l.Get("sky"); ok {
		t.Error("failed program should not be registered")
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if w.Changed() {
		t.Fatal("no edits yet")
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "planet.frag"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !w.Changed() {
		if time.Now().After(deadline) {
			t.Fatal("shader edit never reported")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
