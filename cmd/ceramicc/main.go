// Package main implements the ceramic compiler entry point.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/you-not-fish/ceramic/internal/abi"
	"github.com/you-not-fish/ceramic/internal/codegen"
	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
	"github.com/you-not-fish/ceramic/internal/types2"
)

// Compiler flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	noASI        = flag.Bool("no-asi", false, "Disable automatic semicolon insertion")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output typed AST")
	emitLayout   = flag.Bool("emit-layout", false, "Output stack frame layouts")
	output       = flag.String("o", "", "Output file (default stdout)")
	doctor       = flag.Bool("doctor", false, "Check toolchain")
	version      = flag.Bool("version", false, "Print version")
	verbose      = flag.Bool("v", false, "Verbose logging")
	trace        = flag.Bool("trace", false, "Output timing trace")
)

// Version information
const Version = "0.1.0-dev"

// logger reports driver progress and I/O failures. Compile diagnostics are
// printed to stderr directly in "line: message" form.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ceramicc"})

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ceramic compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: ceramicc [options] [file.cer]\n\n")
		fmt.Fprintf(os.Stderr, "Reads standard input if no file (or -) is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *verbose || *trace {
		logger.SetLevel(log.DebugLevel)
	}

	if *version {
		fmt.Printf("ceramicc version %s\n", Version)
		fmt.Printf("target %s\n", abi.Arch)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *doctor {
		os.Exit(runDoctor())
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: ceramicc [options] [file.cer]")
		os.Exit(1)
	}
	filename := "-"
	if len(args) == 1 {
		filename = args[0]
	}

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	// Handle -emit-typed-ast
	if *emitTypedAST {
		os.Exit(runEmitTypedAST(filename))
	}

	// Handle -emit-layout
	if *emitLayout {
		os.Exit(runEmitLayout(filename))
	}

	os.Exit(runCompile(filename, *output))
}

// scanMode returns the scanner mode selected by the flags.
func scanMode() syntax.ScanMode {
	if *noASI {
		return syntax.NoASI
	}
	return 0
}

// stage runs fn and, with -trace, logs how long it took.
func stage(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	if *trace {
		logger.Info("trace", "stage", name, "elapsed", time.Since(start))
	}
	return err
}

// readInput returns the contents of filename, or of standard input when
// filename is "-". It also returns the name used in positions.
func readInput(filename string) ([]byte, string, error) {
	if filename == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading standard input: %w", err)
		}
		return src, "<stdin>", nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return src, filename, nil
}

// frontEnd lexes, parses and type-checks filename. On failure it prints the
// diagnostic and returns a nil file.
func frontEnd(filename string) (*syntax.File, *types.Package, *types2.Info) {
	file := parseInput(filename)
	if file == nil {
		return nil, nil, nil
	}

	var pkg *types.Package
	info := types2.NewInfo()
	err := stage("check", func() (err error) {
		pkg, err = types2.Check(filename, file, nil, info)
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, nil
	}
	logger.Debug("checked", "procs", len(pkg.Procs()), "types", pkg.Types().Len())
	return file, pkg, info
}

// parseInput lexes and parses filename. On failure it prints the diagnostic
// and returns nil.
func parseInput(filename string) *syntax.File {
	src, name, err := readInput(filename)
	if err != nil {
		logger.Error("cannot read input", "err", err)
		return nil
	}

	var toks []syntax.Lexeme
	err = stage("lex", func() (err error) {
		toks, err = syntax.Tokenize(name, strings.NewReader(string(src)), scanMode())
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	logger.Debug("scanned", "file", name, "tokens", len(toks))

	var file *syntax.File
	err = stage("parse", func() error {
		p := syntax.NewParser(toks, nil)
		file = p.Parse()
		return p.FirstError()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	if logger.GetLevel() <= log.DebugLevel {
		nodes := 0
		syntax.Inspect(file, func(syntax.Node) bool {
			nodes++
			return true
		})
		logger.Debug("parsed", "procs", len(file.Procs), "nodes", nodes)
	}
	return file
}

// runCompile compiles filename to assembly, written to out or to stdout
// when out is empty. A failed compile leaves no output file behind.
func runCompile(filename, out string) int {
	_, pkg, info := frontEnd(filename)
	if pkg == nil {
		return 1
	}

	if out == "" {
		return emitAssembly(os.Stdout, pkg, info)
	}

	f, err := os.Create(out)
	if err != nil {
		logger.Error("cannot create output", "err", err)
		return 1
	}
	code := emitAssembly(f, pkg, info)
	if err := f.Close(); err != nil && code == 0 {
		logger.Error("cannot write output", "err", err)
		code = 1
	}
	if code != 0 {
		if err := os.Remove(out); err != nil {
			logger.Warn("cannot remove partial output", "file", out, "err", err)
		}
	}
	return code
}

// emitAssembly generates the code for pkg into w and returns the exit code.
func emitAssembly(w io.Writer, pkg *types.Package, info *types2.Info) int {
	bw := bufio.NewWriter(w)
	err := stage("codegen", func() error {
		return codegen.Generate(bw, pkg, info, &codegen.Config{Logger: logger, Sizes: types.DefaultSizes})
	})
	if err != nil {
		if _, ok := err.(*codegen.Error); ok {
			fmt.Fprintln(os.Stderr, err)
		} else {
			logger.Error("cannot write output", "err", err)
		}
		return 1
	}
	if err := bw.Flush(); err != nil {
		logger.Error("cannot write output", "err", err)
		return 1
	}
	return 0
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	ast := parseInput(filename)
	if ast == nil {
		return 1
	}

	// Output AST
	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, ast); err != nil {
			logger.Error("cannot write AST", "err", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, ast)
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	src, name, err := readInput(filename)
	if err != nil {
		logger.Error("cannot read input", "err", err)
		return 1
	}

	toks, err := syntax.Tokenize(name, strings.NewReader(string(src)), scanMode())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, tok := range toks {
		fmt.Printf("%-20s %-12s %s\n", tok.Pos, tok.Tok, formatLiteral(tok.Lit))
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runDoctor checks the toolchain and returns an exit code.
func runDoctor() int {
	fmt.Println("ceramic Toolchain Doctor")
	fmt.Println("========================")
	fmt.Println()

	allOk := true

	fmt.Printf("Go:      %s\n", runtime.Version())
	fmt.Printf("Host:    %s/%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOARCH == abi.Arch {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" (output cannot run natively)")
	}

	// Check clang (required to assemble and link)
	clangVersion, clangOk := checkTool("clang", "--version")
	fmt.Printf("clang:   %s", clangVersion)
	if clangOk {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (not found)")
		allOk = false
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return 0
	}

	fmt.Println("Some required tools are missing.")
	return 1
}

// checkTool runs a tool with the given arguments and returns the first line of output.
func checkTool(name string, args ...string) (string, bool) {
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", false
	}

	// Extract first line
	line := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	// Truncate long lines
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line, true
}

// runEmitTypedAST parses, type-checks, and outputs the typed AST.
func runEmitTypedAST(filename string) int {
	ast, pkg, info := frontEnd(filename)
	if pkg == nil {
		return 1
	}
	printTypedAST(os.Stdout, ast, info)
	return 0
}

// printTypedAST outputs the AST with type annotations.
func printTypedAST(w io.Writer, file *syntax.File, info *types2.Info) {
	fmt.Fprintf(w, "File\n")
	for _, d := range file.Procs {
		printTypedProc(w, d, info, "  ")
	}
}

// printTypedProc outputs a procedure declaration with type annotations.
func printTypedProc(w io.Writer, d *syntax.ProcDecl, info *types2.Info, indent string) {
	fmt.Fprintf(w, "%sProcDecl\n", indent)
	fmt.Fprintf(w, "%s  Name: %s (%s)\n", indent, d.Name.Value, objType(info.Defs[d.Name]))
	if len(d.Params) > 0 {
		fmt.Fprintf(w, "%s  Params:\n", indent)
		for _, f := range d.Params {
			fmt.Fprintf(w, "%s    %s%s\n", indent, f.Name.Value, localInfo(info.Defs[f.Name]))
		}
	}
	fmt.Fprintf(w, "%s  Body:\n", indent)
	for _, s := range d.Body.Stmts {
		printTypedStmt(w, s, info, indent+"    ")
	}
}

// printTypedStmt outputs a statement with type annotations.
func printTypedStmt(w io.Writer, stmt syntax.Stmt, info *types2.Info, indent string) {
	switch s := stmt.(type) {
	case *syntax.LocalDecl:
		fmt.Fprintf(w, "%sLocalDecl\n", indent)
		fmt.Fprintf(w, "%s  Name: %s%s\n", indent, s.Name.Value, localInfo(info.Defs[s.Name]))
		if s.Value != nil {
			fmt.Fprintf(w, "%s  Value: %s\n", indent, typedExprString(s.Value, info))
		}

	case *syntax.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", indent)
		fmt.Fprintf(w, "%s  X: %s\n", indent, typedExprString(s.X, info))

	case *syntax.AssignStmt:
		fmt.Fprintf(w, "%sAssignStmt\n", indent)
		fmt.Fprintf(w, "%s  LHS: %s\n", indent, typedExprString(s.LHS, info))
		fmt.Fprintf(w, "%s  RHS: %s\n", indent, typedExprString(s.RHS, info))

	case *syntax.ReturnStmt:
		fmt.Fprintf(w, "%sReturnStmt\n", indent)
		if s.Result != nil {
			fmt.Fprintf(w, "%s  Result: %s\n", indent, typedExprString(s.Result, info))
		}

	case *syntax.BlockStmt:
		fmt.Fprintf(w, "%sBlockStmt\n", indent)
		for _, st := range s.Stmts {
			printTypedStmt(w, st, info, indent+"  ")
		}

	default:
		fmt.Fprintf(w, "%s%T\n", indent, stmt)
	}
}

// objType returns the display type of obj.
func objType(obj types.Object) string {
	if obj == nil {
		return "unresolved"
	}
	return types.TypeString(obj.Type())
}

// localInfo describes the type and slot of a local.
func localInfo(obj types.Object) string {
	local, ok := obj.(*types.Local)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (%s) [x29, #-%d]", types.TypeString(local.Type()), local.Offset())
}

func typedExprString(expr syntax.Expr, info *types2.Info) string {
	tv, ok := info.Types[expr]
	typ := ""
	if ok {
		switch {
		case tv.Type != nil:
			typ = fmt.Sprintf(" (%s)", tv.Type)
		case tv.IsVoid():
			typ = " (no value)"
		}
	}

	switch e := expr.(type) {
	case *syntax.Name:
		return fmt.Sprintf("Name %q%s", e.Value, typ)
	case *syntax.BasicLit:
		return fmt.Sprintf("BasicLit %q%s", e.Value, typ)
	case *syntax.Operation:
		return fmt.Sprintf("Operation %s%s [X=%s, Y=%s]", e.Op, typ, typedExprString(e.X, info), typedExprString(e.Y, info))
	case *syntax.AddrExpr:
		return fmt.Sprintf("AddrExpr%s [X=%s]", typ, typedExprString(e.X, info))
	case *syntax.DerefExpr:
		return fmt.Sprintf("DerefExpr%s [X=%s]", typ, typedExprString(e.X, info))
	case *syntax.CallExpr:
		args := lo.Map(e.Args, func(arg syntax.Expr, _ int) string {
			return typedExprString(arg, info)
		})
		return fmt.Sprintf("CallExpr%s [Fun=%s, Args=[%s]]", typ, typedExprString(e.Fun, info), strings.Join(args, ", "))
	case *syntax.ProcType:
		return fmt.Sprintf("ProcType%s", typ)
	default:
		return fmt.Sprintf("%T%s", expr, typ)
	}
}

// runEmitLayout parses, type-checks, and outputs the stack frame of every
// procedure.
func runEmitLayout(filename string) int {
	_, pkg, _ := frontEnd(filename)
	if pkg == nil {
		return 1
	}
	printLayouts(os.Stdout, pkg, types.DefaultSizes)
	return 0
}

// printLayouts outputs the slot of every local, parameters first, with the
// raw and aligned frame size of each procedure.
func printLayouts(w io.Writer, pkg *types.Package, sizes *types.Sizes) {
	fmt.Fprintln(w, "=== Frame Layouts ===")
	fmt.Fprintln(w)

	for _, proc := range pkg.Procs() {
		fmt.Fprintf(w, "proc %s %s {\n", proc.Name(), proc.Signature())
		for _, local := range proc.Locals() {
			kind := "local"
			if local.IsParam() {
				kind = "param"
			}
			fmt.Fprintf(w, "    %-10s %-15s // [x29, #-%d], size: %d, %s\n",
				local.Name(), local.Type(), local.Offset(), sizes.Sizeof(local.Type()), kind)
		}
		fmt.Fprintf(w, "}\n")
		fmt.Fprintf(w, "// frame: %d, aligned: %d\n", sizes.FrameSize(proc), sizes.AlignedFrameSize(proc))
		fmt.Fprintln(w)
	}
}
