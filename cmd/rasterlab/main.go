// rasterlab - software rasterizer for OBJ and GLB meshes
// Projects a mesh orthographically, fills its faces with barycentric
// triangle rasterization and writes the frame as PNG, BMP or TIFF.
//
// Commands:
//
//	render     Filled triangles (default)
//	wireframe  Face outlines
//	points     One pixel per vertex
//	preview    Render and print a half-block preview to the terminal
//	turntable  Frame sequence of the mesh turning about Y
//	watch      Re-render whenever the mesh or config file changes
//	pattern    Split fill, squares and circle test card
//	negate     Invert an image, optionally at half resolution
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/taigrr/rasterlab/pkg/pipeline"
)

type command struct {
	summary string
	run     func(ctx context.Context, args []string, stdout io.Writer) error
}

var commands = map[string]command{
	"render":    {"Render filled triangles (default)", runRender(pipeline.ModeFill)},
	"wireframe": {"Render face outlines", runRender(pipeline.ModeWireframe)},
	"points":    {"Render one pixel per vertex", runRender(pipeline.ModePoints)},
	"preview":   {"Render and print a terminal preview", runPreview},
	"turntable": {"Render frames of the mesh turning about Y", runTurntable},
	"watch":     {"Re-render on mesh or config changes", runWatch},
	"pattern":   {"Draw the split fill test card", runPattern},
	"negate":    {"Invert an image, optionally downsampling 2x", runNegate},
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "rasterlab - software mesh rasterizer\n\n")
	fmt.Fprintf(w, "Usage: rasterlab [command] [options] [model.obj|model.glb]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "\nRun 'rasterlab <command> -help' for command options.\n")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches args to a command. A first argument that is not a command
// name is passed on to render.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	name := "render"
	if len(args) > 0 {
		switch a := args[0]; {
		case a == "help" || a == "-h" || a == "-help" || a == "--help":
			usage(stdout)
			return nil
		case !strings.HasPrefix(a, "-"):
			if _, ok := commands[a]; ok {
				name, args = a, args[1:]
			}
		}
	}

	err := commands[name].run(ctx, args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
