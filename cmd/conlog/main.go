// Command conlog parses a conlog program and searches for a satisfying
// maze traversal.
//
// Usage:
//
//	conlog [flags] [FILE]
//
// With FILE, the program is parsed and solved: free-variable bindings
// print as "name = value" lines, followed by the accumulated output
// stream. "unsatisfiable" prints when the search exhausts or exceeds
// its budget. Without FILE (or with -i), an interactive session starts.
//
// Exit codes: 0 on a clean run (solved or unsatisfiable), 1 when the
// input fails to parse.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/koragendum/conlog/frontend"
	"github.com/koragendum/conlog/solver"
)

func main() {
	var (
		limit       = flag.Int("limit", solver.DefaultIterationLimit, "search iteration limit")
		elide       = flag.Bool("elide", false, "collapse chains of junction nodes")
		interactive = flag.Bool("i", false, "load the program, then start an interactive session")
		verbose     = flag.Bool("v", false, "enable search tracing on stderr")
	)
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	program := frontend.NewProgram()

	if filename := flag.Arg(0); filename != "" {
		if !strings.HasSuffix(filename, ".cl") && !strings.HasSuffix(filename, ".cla") {
			fmt.Fprintf(os.Stderr, "warning: not a conlog file: %s\n", filename)
		}
		text, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if err := program.Add(string(text)); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if !*interactive {
			os.Exit(runSolve(program, *limit, *elide, logger))
		}
	}

	repl(program, *limit, *elide, logger)
}

// runSolve solves the accumulated program and prints the result.
// Returns the process exit code.
func runSolve(program *frontend.Program, limit int, elide bool, logger zerolog.Logger) int {
	graph, err := program.Graph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	opts := []solver.Option{
		solver.WithIterationLimit(limit),
		solver.WithLogger(logger),
	}
	if elide {
		opts = append(opts, solver.WithNoOpElision())
	}
	res, err := solver.Solve(graph, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if res.Outcome != solver.Satisfiable {
		fmt.Println("unsatisfiable")
		return 0
	}

	sol := res.Solution
	for _, name := range graph.Vars() {
		if isFree(graph.InitialOp().Free, name) {
			fmt.Printf("%s = %d\n", name, sol.Assignment[name])
		}
	}
	if len(sol.Output) > 0 {
		fmt.Println(sol.Output.String())
	}

	return 0
}

func isFree(free []string, name string) bool {
	for _, f := range free {
		if f == name {
			return true
		}
	}

	return false
}

// repl runs the interactive session: statements accumulate into the
// program; single-word commands inspect or solve it.
func repl(program *frontend.Program, limit int, elide bool, logger zerolog.Logger) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("conlog: ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "exit", "quit", ":q":
			return
		case "help":
			printHelp()
			continue
		case "limit":
			if len(fields) == 1 {
				fmt.Printf("limit is %d\n", limit)
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				fmt.Println("error: limit must be a positive integer")
				continue
			}
			limit = n
			continue
		case "solve", "go", "run":
			if uninit := program.Uninitialized(); len(uninit) > 0 {
				fmt.Printf("%s uninitialized and assumed free\n", strings.Join(uninit, ", "))
			}
			runSolve(program, limit, elide, logger)
			continue
		case "clear", "reset":
			program = frontend.NewProgram()
			continue
		case "vars", "nodes", "show":
			query := fields[0]
			if query == "show" {
				query = ""
			}
			for _, l := range program.Describe(query) {
				fmt.Println(l)
			}
			continue
		}

		if len(fields) == 1 && !strings.ContainsAny(line, "=[-;") {
			// A bare name inspects its definition.
			for _, l := range program.Describe(fields[0]) {
				fmt.Println(l)
			}
			continue
		}

		if err := program.Add(line); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func printHelp() {
	fmt.Println("limit               print the current search limit")
	fmt.Println("limit <num>         set the search limit to <num>")
	fmt.Println("solve|go|run        solve the current graph")
	fmt.Println("reset|clear         reset the current graph")
	fmt.Println("<name>              print the definition of <name>")
	fmt.Println("vars                print the definitions of all variables")
	fmt.Println("nodes               print the definitions of all nodes")
	fmt.Println("show                print the whole program")
	fmt.Println("exit|quit           exit the interpreter")
}
