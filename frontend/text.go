// Package frontend: program assembly and graph conversion.
package frontend

import (
	"fmt"
	"sort"

	"github.com/koragendum/conlog/core"
)

// Reserved node names carrying the Initial and Terminal operations.
const (
	InitialName  = "initial"
	TerminalName = "final"
)

// varState is a variable's declared initialization.
type varState struct {
	free  bool
	bound bool // a constant was given
	value int64
}

// nodeOp is a node's declared operation, pre-conversion.
type nodeOp struct {
	sym string // "+=", "-=", "++?", "--?", "iprint", "uprint"
	lhs string // empty for prints
	rhs core.Operand
}

// Program accumulates statements (from a file or an interactive
// session) and converts them into a validated core.Graph. Declaration
// order is preserved so conversion is deterministic.
type Program struct {
	vars     map[string]varState
	varOrder []string

	nodes     map[string]*nodeOp // nil value = junction
	nodeOrder []string

	edges    map[[2]string]struct{}
	edgeList [][2]string
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{
		vars:  make(map[string]varState),
		nodes: make(map[string]*nodeOp),
		edges: make(map[[2]string]struct{}),
	}
}

// Parse assembles a whole program from source text.
func Parse(src string) (*Program, error) {
	p := NewProgram()
	if err := p.Add(src); err != nil {
		return nil, err
	}

	return p, nil
}

// Add parses src (one or more ";"-separated statements) into the
// program. Interactive sessions call Add once per input line.
func (p *Program) Add(src string) error {
	statements, err := tokenize(src)
	if err != nil {
		return err
	}
	for _, seq := range statements {
		if err := p.addStatement(seq); err != nil {
			return err
		}
	}

	return nil
}

// addStatement dispatches one statement: a variable initialization or a
// node/edge chain.
func (p *Program) addStatement(seq []Token) error {
	if seq[0].Kind != KindName {
		return errAt("statement must begin with a name", seq[0])
	}
	if len(seq) >= 2 && seq[1].Kind == KindSymbol && seq[1].Text == "=" {
		return p.addInitialization(seq)
	}

	return p.addChain(seq)
}

// addInitialization handles: var-name "=" (const | char | "?").
func (p *Program) addInitialization(seq []Token) error {
	if len(seq) < 3 {
		return errAt("incomplete variable initialization", seq...)
	}
	if len(seq) > 3 {
		return errAt("extraneous characters in variable initialization", seq[3:]...)
	}
	name := seq[0].Text
	val := seq[2]
	isLiteral := val.Kind == KindNumeric || val.Kind == KindCharacter
	isFree := val.Kind == KindSymbol && val.Text == "?"
	if !isLiteral && !isFree {
		return errAt("variable must be initialized to a constant or marked free", val)
	}
	if prev, ok := p.vars[name]; ok && (prev.free || prev.bound) {
		return errAt("variable has already been initialized", seq[0])
	}
	p.declareVar(name)
	if isFree {
		p.vars[name] = varState{free: true}
	} else {
		p.vars[name] = varState{bound: true, value: val.Num}
	}

	return nil
}

// addChain handles: node ("--" node)*.
func (p *Program) addChain(seq []Token) error {
	index := 0
	last := ""
	for {
		consumed, name, err := p.addNode(seq[index:])
		if err != nil {
			return err
		}
		if last != "" {
			if name == last {
				return errAt("cannot make edge from a node to itself", seq[index])
			}
			p.addEdge(last, name)
		}
		last = name

		index += consumed
		if index >= len(seq) {
			return nil
		}
		if !(seq[index].Kind == KindSymbol && seq[index].Text == "--") {
			return errAt("expected edge", seq[index])
		}
		index++
		if index >= len(seq) {
			return errAt("dangling edge", seq[index-1])
		}
	}
}

// addNode consumes one node form from seq, declaring it if new.
// Returns the number of tokens consumed and the node name.
func (p *Program) addNode(seq []Token) (int, string, error) {
	if seq[0].Kind != KindName {
		return 0, "", errAt("expected node name", seq[0])
	}
	name := seq[0].Text

	if len(seq) == 1 || !(seq[1].Kind == KindSymbol && seq[1].Text == "[") {
		p.declareNode(name)
		return 1, name, nil
	}

	if name == InitialName || name == TerminalName {
		return 0, "", errAt("cannot define node operation for initial or final", seq[0])
	}
	if len(seq) < 5 {
		return 0, "", errAt("incomplete node definition", seq...)
	}
	if seq[2].Kind != KindName {
		return 0, "", errAt("expected variable name", seq[2])
	}
	if p.nodes[name] != nil {
		return 0, "", errAt("node operation has already been defined", seq[1:5]...)
	}

	// Print form: name "[" ("iprint"|"uprint") arg "]".
	if seq[2].Text == "iprint" || seq[2].Text == "uprint" {
		arg, err := p.operand(seq[3])
		if err != nil {
			return 0, "", err
		}
		if !(seq[4].Kind == KindSymbol && seq[4].Text == "]") {
			return 0, "", errAt("expected a closing bracket", seq[4])
		}
		p.declareNode(name)
		p.nodes[name] = &nodeOp{sym: seq[2].Text, rhs: arg}
		return 5, name, nil
	}

	if len(seq) < 6 {
		return 0, "", errAt("incomplete node definition", seq...)
	}
	if !(seq[3].Kind == KindSymbol && isOperator(seq[3].Text)) {
		return 0, "", errAt("expected operator", seq[3])
	}
	op := seq[3].Text
	if seq[4].Kind != KindName && seq[4].Kind != KindNumeric && seq[4].Kind != KindCharacter {
		return 0, "", errAt("expected literal or variable name", seq[4])
	}
	if (op == "++?" || op == "--?") && seq[4].Kind != KindName {
		return 0, "", errAt("expected variable name", seq[4])
	}
	if !(seq[5].Kind == KindSymbol && seq[5].Text == "]") {
		return 0, "", errAt("expected a closing bracket", seq[5])
	}
	if seq[4].Kind == KindName && seq[2].Text == seq[4].Text {
		return 0, "", errAt("variable automutation is forbidden", seq[2], seq[4])
	}

	lhs := seq[2].Text
	p.declareVar(lhs)
	rhs, err := p.operand(seq[4])
	if err != nil {
		return 0, "", err
	}
	p.declareNode(name)
	p.nodes[name] = &nodeOp{sym: op, lhs: lhs, rhs: rhs}

	return 6, name, nil
}

func isOperator(s string) bool {
	return s == "+=" || s == "-=" || s == "++?" || s == "--?"
}

// operand converts an argument token, declaring variable references.
func (p *Program) operand(tok Token) (core.Operand, error) {
	switch tok.Kind {
	case KindName:
		p.declareVar(tok.Text)
		return core.Var(tok.Text), nil
	case KindNumeric, KindCharacter:
		return core.Lit(tok.Num), nil
	default:
		return core.Operand{}, errAt("expected literal or variable name", tok)
	}
}

func (p *Program) declareVar(name string) {
	if _, ok := p.vars[name]; !ok {
		p.vars[name] = varState{}
		p.varOrder = append(p.varOrder, name)
	}
}

func (p *Program) declareNode(name string) {
	if _, ok := p.nodes[name]; !ok {
		p.nodes[name] = nil
		p.nodeOrder = append(p.nodeOrder, name)
	}
}

func (p *Program) addEdge(a, b string) {
	key := [2]string{a, b}
	if b < a {
		key = [2]string{b, a}
	}
	if _, ok := p.edges[key]; ok {
		return
	}
	p.edges[key] = struct{}{}
	p.edgeList = append(p.edgeList, key)
}

// Uninitialized lists the variables never set to a constant or marked
// free, sorted. An interactive session can warn before running;
// Graph treats them as free.
func (p *Program) Uninitialized() []string {
	var out []string
	for name, st := range p.vars {
		if !st.free && !st.bound {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// Graph converts the program into a validated core.Graph. Uninitialized
// variables become free. The initial and final nodes must have been
// declared (they appear in some edge chain).
func (p *Program) Graph() (*core.Graph, error) {
	if _, ok := p.nodes[InitialName]; !ok {
		return nil, errAt(fmt.Sprintf("program has no %q node", InitialName))
	}
	if _, ok := p.nodes[TerminalName]; !ok {
		return nil, errAt(fmt.Sprintf("program has no %q node", TerminalName))
	}

	var free []string
	var fixed []core.FixedVar
	for _, name := range p.varOrder {
		st := p.vars[name]
		if st.bound {
			fixed = append(fixed, core.FixedVar{Name: name, Value: st.value})
		} else {
			free = append(free, name)
		}
	}

	g := core.NewGraph()
	for _, name := range p.nodeOrder {
		var op core.Operation
		switch decl := p.nodes[name]; {
		case name == InitialName:
			op = core.Initial{Free: free, Fixed: fixed}
		case name == TerminalName:
			op = core.Terminal{}
		case decl == nil:
			op = core.NoOp{}
		default:
			switch decl.sym {
			case "+=":
				op = core.Add{Lhs: decl.lhs, Rhs: decl.rhs}
			case "-=":
				op = core.Sub{Lhs: decl.lhs, Rhs: decl.rhs}
			case "++?":
				op = core.CondInc{Lhs: decl.lhs, Rhs: decl.rhs}
			case "--?":
				op = core.CondDec{Lhs: decl.lhs, Rhs: decl.rhs}
			case "iprint":
				op = core.IntegerPrint{Arg: decl.rhs}
			case "uprint":
				op = core.UnicodePrint{Arg: decl.rhs}
			}
		}
		if err := g.AddNode(core.Node{Name: name, Op: op}); err != nil {
			return nil, err
		}
	}
	for _, e := range p.edgeList {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Describe renders the program's declarations for interactive
// inspection: query "" for everything, "vars" or "nodes" to filter, or
// a specific name.
func (p *Program) Describe(query string) []string {
	var names []string
	switch query {
	case "":
		seen := make(map[string]struct{})
		for _, n := range append(append([]string{}, p.varOrder...), p.nodeOrder...) {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				names = append(names, n)
			}
		}
		sort.Strings(names)
	case "vars":
		names = append(names, p.varOrder...)
		sort.Strings(names)
	case "nodes":
		names = append(names, p.nodeOrder...)
		sort.Strings(names)
	default:
		names = []string{query}
	}

	var out []string
	for _, name := range names {
		if st, ok := p.vars[name]; ok && query != "nodes" {
			switch {
			case st.bound:
				out = append(out, fmt.Sprintf("%s = %d", name, st.value))
			case st.free:
				out = append(out, fmt.Sprintf("%s free", name))
			default:
				out = append(out, fmt.Sprintf("%s uninitialized", name))
			}
		}
		if decl, ok := p.nodes[name]; ok && query != "vars" {
			desc := name
			if decl != nil {
				if decl.lhs != "" {
					desc = fmt.Sprintf("%s [%s%s%s]", name, decl.lhs, decl.sym, decl.rhs)
				} else {
					desc = fmt.Sprintf("%s [%s %s]", name, decl.sym, decl.rhs)
				}
			}
			var adjuncts []string
			for _, e := range p.edgeList {
				if e[0] == name {
					adjuncts = append(adjuncts, e[1])
				} else if e[1] == name {
					adjuncts = append(adjuncts, e[0])
				}
			}
			sort.Strings(adjuncts)
			if len(adjuncts) > 0 {
				desc += " -- "
				for i, a := range adjuncts {
					if i > 0 {
						desc += ", "
					}
					desc += a
				}
			}
			out = append(out, desc)
		}
	}

	return out
}
