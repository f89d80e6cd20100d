// meshtool is a headless CLI for inspecting orrery geometry.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "sphere":
		err = cmdSphere(args, os.Stdout)
	case "torus":
		err = cmdTorus(args, os.Stdout)
	case "system", "sys":
		err = cmdSystem(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - orrery geometry utility

Usage:
  meshtool <command> [options]

Commands:
  sphere [-r R] [-sectors N] [-stacks N] [-o file.obj]
         Generate a UV sphere, print stats, optionally export OBJ
  torus  [-outer R] [-inner r] [-sides N] [-rings N] [-o file.obj]
         Generate a torus, print stats, optionally export OBJ
  system [-config file.yaml] [-t seconds]
         List the configured bodies and their positions at time t

Examples:
  meshtool sphere -r 5 -o sun.obj
  meshtool torus -outer 12 -inner 0.02 -sides 64 -rings 64
  meshtool system -t 10`)
}

func cmdSphere(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)
	radius := fs.Float64("r", 1, "Radius")
	sectors := fs.Int("sectors", 36, "Longitude divisions")
	stacks := fs.Int("stacks", 18, "Latitude divisions")
	objPath := fs.String("o", "", "Write OBJ to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := geometry.Sphere(float32(*radius), *sectors, *stacks)
	if err != nil {
		return err
	}
	printStats(out, "sphere", m)
	return exportOBJ(m, *objPath, out)
}

func cmdTorus(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("torus", flag.ContinueOnError)
	outer := fs.Float64("outer", 1, "Distance from the center to the tube center")
	inner := fs.Float64("inner", scene.OrbitPathThickness, "Tube radius")
	sides := fs.Int("sides", scene.OrbitPathSegments, "Divisions around the tube")
	rings := fs.Int("rings", scene.OrbitPathSegments, "Divisions around the center")
	objPath := fs.String("o", "", "Write OBJ to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := geometry.Torus(float32(*outer), float32(*inner), *sides, *rings)
	if err != nil {
		return err
	}
	printStats(out, "torus", m)
	return exportOBJ(m, *objPath, out)
}

func printStats(out io.Writer, kind string, m *geometry.Mesh) {
	lo, hi := bounds(m)
	fmt.Fprintf(out, "Mesh:      %s\n", kind)
	fmt.Fprintf(out, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(out, "Indices:   %d\n", len(m.Indices))
	fmt.Fprintf(out, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
}

func bounds(m *geometry.Mesh) (lo, hi [3]float32) {
	n := m.VertexCount()
	if n == 0 {
		return lo, hi
	}
	p := m.Position(0)
	lo, hi = p, p
	for i := 1; i < n; i++ {
		p = m.Position(i)
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

func exportOBJ(m *geometry.Mesh, path string, out io.Writer) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote:     %s\n", path)
	return nil
}

func cmdSystem(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("system", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Config file (defaults when empty)")
	at := fs.Float64("t", 0, "Simulation time in seconds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		return err
	}
	specs, err := cfg.BodySpecs()
	if err != nil {
		return err
	}
	system, err := sim.NewSystem(specs)
	if err != nil {
		return err
	}
	system.Update(float32(*at))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPARENT\tRADIUS\tDISTANCE\tVERTICES\tRINGS\tPOSITION")
	for i, b := range system.Bodies() {
		spec := b.Spec()
		parent := "-"
		if p := system.Parent(i); p != nil {
			parent = p.Name()
		}
		rings := cfg.Bodies[i].RingCount
		if cfg.Bodies[i].RingTexture == "" {
			rings = 0
		}
		pos := b.WorldPosition()
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\t%d\t%d\t(%.2f, %.2f, %.2f)\n",
			spec.Name, parent, spec.Radius, spec.Distance,
			(spec.Stacks+1)*(spec.Sectors+1), rings,
			pos[0], pos[1], pos[2])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d bodies at t=%gs\n", system.Len(), *at)
	return nil
}
