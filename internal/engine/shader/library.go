package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// Definition names a program and its source files inside a Library's FS.
type Definition struct {
	Name     string
	Vertex   string
	Fragment string
}

// LoadSources reads a vertex and fragment shader pair from fsys.
func LoadSources(fsys fs.FS, vertPath, fragPath string) (vertex, fragment string, err error) {
	vs, err := fs.ReadFile(fsys, vertPath)
	if err != nil {
		return "", "", fmt.Errorf("reading vertex shader: %w", err)
	}
	frag, err := fs.ReadFile(fsys, fragPath)
	if err != nil {
		return "", "", fmt.Errorf("reading fragment shader: %w", err)
	}
	return string(vs), string(frag), nil
}

// Library compiles each named program once and hands out the shared
// instance. Programs keep their identity across reloads.
type Library struct {
	fsys     fs.FS
	defs     map[string]Definition
	programs map[string]*Program

	compile func(vs, fs string) (uint32, error)
	release func(id uint32)
}

// NewLibrary creates a library reading sources from fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{
		fsys:     fsys,
		defs:     make(map[string]Definition),
		programs: make(map[string]*Program),
		compile:  CompileProgram,
		release:  func(id uint32) { gl.DeleteProgram(id) },
	}
}

// Add compiles def and registers it. If a program with the same name
// exists it is returned unchanged.
func (l *Library) Add(def Definition) (*Program, error) {
	if p, ok := l.programs[def.Name]; ok {
		return p, nil
	}
	id, err := l.build(def)
	if err != nil {
		return nil, err
	}
	p := newProgram(def.Name, id)
	l.defs[def.Name] = def
	l.programs[def.Name] = p
	logger.Category(logger.CategoryShader).Debug("program compiled",
		zap.String("name", def.Name), zap.Uint32("id", id))
	return p, nil
}

func (l *Library) build(def Definition) (uint32, error) {
	vs, frag, err := LoadSources(l.fsys, def.Vertex, def.Fragment)
	if err != nil {
		return 0, fmt.Errorf("shader %s: %w", def.Name, err)
	}
	id, err := l.compile(vs, frag)
	if err != nil {
		return 0, withProgram(err, def.Name)
	}
	return id, nil
}

// Get returns the named program.
func (l *Library) Get(name string) (*Program, bool) {
	p, ok := l.programs[name]
	return p, ok
}

// Names returns the registered program names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.programs))
	for n := range l.programs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Reload recompiles every program from the library's FS. A program that
// fails to build keeps its previous handle; all failures are returned.
func (l *Library) Reload() error {
	var errs []error
	for _, name := range l.Names() {
		id, err := l.build(l.defs[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if old := l.programs[name].swap(id); old != 0 {
			l.release(old)
		}
	}
	return errors.Join(errs...)
}

// Delete releases every program.
func (l *Library) Delete() {
	for _, p := range l.programs {
		if old := p.swap(0); old != 0 {
			l.release(old)
		}
	}
	l.programs = make(map[string]*Program)
	l.defs = make(map[string]Definition)
}
