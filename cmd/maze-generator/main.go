package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/term"

	"github.com/lixenwraith/gridpath/config"
	"github.com/lixenwraith/gridpath/grid"
	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/parameter"
	"github.com/lixenwraith/gridpath/pathfind"
)

// options is one generation request
type options struct {
	size    int
	kind    maze.Kind
	density int
	seed    int64
	solve   bool
	check   bool
}

// glyphs is the character set used to print a grid
type glyphs struct {
	start, end, wall, path, explored, open string
}

var (
	unicodeGlyphs = glyphs{start: "S", end: "E", wall: "█", path: "•", explored: "·", open: " "}
	asciiGlyphs   = glyphs{start: "S", end: "E", wall: "#", path: "*", explored: ".", open: " "}
)

func main() {
	size := flag.Int("size", parameter.DefaultGridSize, "Grid size (cells per side)")
	mode := flag.String("mode", parameter.DefaultMazeKind, "Generator: random or prims")
	density := flag.Int("density", parameter.DefaultMazeDensity, "Barrier draw count for random mode")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	solve := flag.Bool("solve", false, "Run the path search and overlay the result")
	ascii := flag.Bool("ascii", false, "Force ASCII glyphs")
	check := flag.Bool("check", false, "Exit non-zero when the end is unreachable")
	interactive := flag.Bool("i", false, "Prompt for parameters in a loop")
	flag.Parse()

	kind, err := maze.ParseKind(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	g := lo.Ternary(*ascii || !term.IsTerminal(int(os.Stdout.Fd())), asciiGlyphs, unicodeGlyphs)
	opts := options{size: *size, kind: kind, density: *density, seed: *seed, solve: *solve, check: *check}

	if *interactive {
		interactiveLoop(bufio.NewReader(os.Stdin), os.Stdout, opts, g)
		return
	}

	if err := run(os.Stdout, opts, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run generates one maze, optionally solves it, and prints grid and report
func run(w io.Writer, o options, g glyphs) error {
	gen, err := maze.NewGenerator(o.size, maze.WithSeed(o.seed))
	if err != nil {
		return err
	}

	// Random barriers are rejection-sampled and need free cells left to land on
	if limit := config.MaxDensity(gen.Size()); o.kind == maze.KindRandom && o.density > limit {
		fmt.Fprintf(w, "Density %d capped at %d for a %dx%d grid\n", o.density, limit, o.size, o.size)
		o.density = limit
	}

	startT := time.Now()
	data, err := gen.Generate(o.kind, o.density)
	if err != nil {
		return err
	}
	dur := time.Since(startT)

	fmt.Fprintf(w, "%s maze %dx%d generated in %v\n", o.kind, o.size, o.size, dur)
	fmt.Fprintf(w, "Start %v  End %v  Barriers %d\n", data.Start, data.End, data.Barriers.Len())

	connected := data.Connected()
	if !connected {
		fmt.Fprintf(w, "Status: end is not connected to start (%d open cells unreachable)\n", len(data.Isolated()))
	}

	var res *pathfind.Result
	if o.solve {
		r, rep, err := solve(data)
		if err != nil {
			return err
		}
		res = &r
		report(w, rep)
	}

	draw(w, data, res, g)

	if o.check && !connected {
		return fmt.Errorf("end %v unreachable from start %v", data.End, data.Start)
	}
	return nil
}

// solve searches the maze and checks the returned path
func solve(data maze.Data) (pathfind.Result, pathfind.Report, error) {
	pf, err := pathfind.New(data.Size, data.Barriers)
	if err != nil {
		return pathfind.Result{}, pathfind.Report{}, err
	}
	size := pf.Size()

	startT := time.Now()
	res, err := pf.FindPath(data.Start, data.End)
	if err != nil {
		return pathfind.Result{}, pathfind.Report{}, err
	}
	rep := pathfind.Analyze(size, data.Barriers.Len(), data.Start, data.End, res)
	rep.Elapsed = time.Since(startT)

	if res.Found() {
		if err := pathfind.ValidatePath(size, data.Barriers, data.Start, data.End, res.Path); err != nil {
			return res, rep, fmt.Errorf("search returned an invalid path: %w", err)
		}
	}
	return res, rep, nil
}

func report(w io.Writer, rep pathfind.Report) {
	if !rep.Found {
		fmt.Fprintf(w, "Search (%s, %s): no path, %d nodes explored in %v\n",
			parameter.AlgorithmName, parameter.HeuristicName, rep.NodesExplored, rep.Elapsed)
		return
	}
	fmt.Fprintf(w, "Search (%s, %s): path %d steps, %d nodes explored in %v\n",
		parameter.AlgorithmName, parameter.HeuristicName, rep.PathLength, rep.NodesExplored, rep.Elapsed)
	fmt.Fprintf(w, "Optimality %d%%  Efficiency %d%%\n", rep.Optimality, rep.Efficiency)
}

// draw prints the grid; res may be nil
func draw(w io.Writer, data maze.Data, res *pathfind.Result, g glyphs) {
	var onPath, explored map[grid.Position]bool
	if res != nil {
		keep := func(p grid.Position) (grid.Position, bool) { return p, true }
		onPath = lo.Associate(res.Path, keep)
		explored = lo.Associate(res.Exploration, keep)
	}

	var b strings.Builder
	for row := 0; row < data.Size; row++ {
		for col := 0; col < data.Size; col++ {
			p := grid.Position{Row: row, Col: col}
			switch {
			case p == data.Start:
				b.WriteString(g.start)
			case p == data.End:
				b.WriteString(g.end)
			case data.Barriers.Has(p):
				b.WriteString(g.wall)
			case onPath[p]:
				b.WriteString(g.path)
			case explored[p]:
				b.WriteString(g.explored)
			default:
				b.WriteString(g.open)
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}

// --- Interactive mode ---

// interactiveLoop prompts for parameters until the user declines or input ends
func interactiveLoop(r *bufio.Reader, w io.Writer, defaults options, g glyphs) {
	for {
		fmt.Fprintln(w, "\n=== GRID MAZE GENERATOR ===")

		o := defaults
		o.size = getInt(r, w, fmt.Sprintf("Size (default %d): ", defaults.size), defaults.size)
		kindStr, _ := getString(r, w, fmt.Sprintf("Mode [random/prims] (default %s): ", defaults.kind), defaults.kind.String())
		if kind, err := maze.ParseKind(kindStr); err == nil {
			o.kind = kind
		}
		if o.kind == maze.KindRandom {
			o.density = getInt(r, w, fmt.Sprintf("Density (default %d): ", defaults.density), defaults.density)
		}
		solveStr, _ := getString(r, w, "Solve? [y/N]: ", "n")
		o.solve = strings.EqualFold(solveStr, "y")

		if err := run(w, o, g); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

		cont, err := getString(r, w, "\nGenerate another? [Y/n]: ", "y")
		if err != nil || strings.EqualFold(cont, "n") {
			return
		}
	}
}

// getString returns the trimmed input line, or def when it is empty. The read error is passed
// through so callers can stop at end of input.
func getString(r *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	fmt.Fprint(w, prompt)
	s, err := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def, err
	}
	return s, nil
}

func getInt(r *bufio.Reader, w io.Writer, prompt string, def int) int {
	s, _ := getString(r, w, prompt, "")
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
