package types2

import (
	"strings"
	"testing"

	"github.com/you-not-fish/ceramic/internal/syntax"
	"github.com/you-not-fish/ceramic/internal/types"
)

// parseAndCheck parses source code and runs the type checker.
// Parse errors fail the test.
func parseAndCheck(t *testing.T, src string) (*types.Package, *Info, error) {
	t.Helper()
	file, err := syntax.Parse("test.cer", strings.NewReader(src), 0)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	info := NewInfo()
	pkg, err := Check("test.cer", file, nil, info)
	return pkg, info, err
}

// expectNoErrors checks that the source code type-checks without errors.
func expectNoErrors(t *testing.T, src string) (*types.Package, *Info) {
	t.Helper()
	pkg, info, err := parseAndCheck(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pkg, info
}

// expectError checks that type-checking stops with the given diagnostic,
// formatted as "line: message".
func expectError(t *testing.T, src, want string) {
	t.Helper()
	_, _, err := parseAndCheck(t, src)
	if err == nil {
		t.Fatalf("expected error %q, got none", want)
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("error %T is not *Error", err)
	}
	if got := err.Error(); got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

// procByName returns the procedure object named name.
func procByName(t *testing.T, pkg *types.Package, name string) *types.ProcObj {
	t.Helper()
	obj, ok := pkg.Scope().Lookup(name).(*types.ProcObj)
	if !ok {
		t.Fatalf("procedure %s not found", name)
	}
	return obj
}

func TestProcDeclarations(t *testing.T) {
	pkg, _ := expectNoErrors(t, `
proc add(a: int, b: int) int {
	return a + b
}

proc noop() {
}

proc main() int {
	noop()
	return add(1, 2)
}
`)

	tests := []struct {
		name string
		sig  string
	}{
		{"add", "proc(int, int) int"},
		{"noop", "proc()"},
		{"main", "proc() int"},
	}
	procs := pkg.Procs()
	if len(procs) != len(tests) {
		t.Fatalf("got %d procedures, want %d", len(procs), len(tests))
	}
	for i, tt := range tests {
		if procs[i].Name() != tt.name {
			t.Errorf("procs[%d] = %s, want %s", i, procs[i].Name(), tt.name)
		}
		if got := procs[i].Signature().String(); got != tt.sig {
			t.Errorf("%s signature = %q, want %q", tt.name, got, tt.sig)
		}
	}
}

func TestForwardCall(t *testing.T) {
	expectNoErrors(t, `
proc main() int {
	return later(41)
}

proc later(x: int) int {
	return x + 1
}
`)
}

func TestLocalDeclarations(t *testing.T) {
	expectNoErrors(t, `
proc main() int {
	a: int
	b: int = 2
	c := a + b
	p := *c
	q: *int = p
	return q^
}
`)
}

func TestPointers(t *testing.T) {
	_, info := expectNoErrors(t, `
proc main() int {
	x := 1
	p := *x
	pp := *p
	pp^^ = p^ + 2
	return x
}
`)

	for e, tv := range info.Types {
		d, ok := e.(*syntax.DerefExpr)
		if !ok {
			continue
		}
		if !tv.IsAddressable() {
			t.Errorf("%s is not addressable", syntax.ExprString(d))
		}
	}
}

func TestProcValues(t *testing.T) {
	expectNoErrors(t, `
proc add(a: int, b: int) int {
	return a + b
}

proc apply(f: proc(int, int) int, a: int) int {
	return f(a, a)
}

proc pick() proc(int, int) int {
	return add
}

proc main() int {
	g: proc(int, int) int = add
	g = pick()
	return apply(g, 21) + pick()(1, 2)
}
`)
}

func TestSiblingBlocks(t *testing.T) {
	expectNoErrors(t, `
proc main() int {
	{
		x := 1
	}
	{
		x := 2
	}
	y := 3
	return y
}
`)
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"redeclared local",
			"proc main() {\n\tx: int\n\tx: int\n}\n",
			`3: "x" redeclared`,
		},
		{
			"redeclared param",
			"proc f(a: int, a: int) {\n}\n",
			`1: "a" redeclared`,
		},
		{
			"redeclared proc",
			"proc f() {\n}\nproc f() {\n}\n",
			`3: "f" redeclared`,
		},
		{
			"shadowed param",
			"proc f(a: int) {\n\t{\n\t\ta: int\n\t}\n}\n",
			`3: "a" redeclared`,
		},
		{
			"local named like proc",
			"proc f() {\n\tf := 1\n}\n",
			`2: "f" redeclared`,
		},
		{
			"param named like proc",
			"proc g() {\n}\nproc f(g: int) {\n}\n",
			`3: "g" redeclared`,
		},
		{
			"unknown name",
			"proc f() {\n\tx = 1\n}\n",
			`2: unknown name "x"`,
		},
		{
			"self-referencing initializer",
			"proc f() {\n\tx := x\n}\n",
			`2: unknown name "x"`,
		},
		{
			"name out of scope",
			"proc f() int {\n\t{\n\t\tx := 1\n\t}\n\treturn x\n}\n",
			`5: unknown name "x"`,
		},
		{
			"int in value position",
			"proc f() {\n\tx := int\n}\n",
			`2: unknown name "int"`,
		},
		{
			"unknown type",
			"proc f(a: foo) {\n}\n",
			`1: unknown type "foo"`,
		},
		{
			"unknown result type",
			"proc f() *bar {\n}\n",
			`1: unknown type "bar"`,
		},
		{
			"non-type expression",
			"proc f(a: 1) {\n}\n",
			"1: cannot use non-type expression as type",
		},
		{
			"call as type",
			"proc f() {\n\tx: g()\n}\n",
			"2: cannot use non-type expression as type",
		},
		{
			"initializer mismatch",
			"proc f(p: *int) {\n\tx: int = p\n}\n",
			`2: expected "int" but found "*int"`,
		},
		{
			"initializer without value",
			"proc g() {\n}\nproc f() {\n\tx := g()\n}\n",
			"4: cannot initialize variable using expression without value",
		},
		{
			"missing type and initializer",
			"proc f() {\n\tx: ;\n}\n",
			"2: missing type or initializer in local declaration",
		},
		{
			"unused expression",
			"proc f() {\n\t1 + 2\n}\n",
			"2: unused expression",
		},
		{
			"unused call result",
			"proc g() int {\n\treturn 1\n}\nproc f() {\n\tg()\n}\n",
			"5: unused expression",
		},
		{
			"missing return value",
			"proc f() int {\n\treturn;\n}\n",
			"2: missing return value",
		},
		{
			"return value from valueless proc",
			"proc f() {\n\treturn 1\n}\n",
			"2: cannot return value from procedure with no return value",
		},
		{
			"return mismatch",
			"proc f() *int {\n\treturn 1\n}\n",
			`2: expected "*int" but found "int"`,
		},
		{
			"return of valueless call",
			"proc g() {\n}\nproc f() int {\n\treturn g()\n}\n",
			`4: expected "int" but found "no value"`,
		},
		{
			"address of valueless call",
			"proc g() {\n}\nproc f() {\n\tp := *g()\n}\n",
			"4: cannot take address of expression without value",
		},
		{
			"dereference of int",
			"proc f(a: int) int {\n\treturn a^\n}\n",
			`2: can't dereference non-pointer type "int"`,
		},
		{
			"call of int",
			"proc f(a: int) {\n\ta(1)\n}\n",
			`2: cannot call non-procedure type "int"`,
		},
		{
			"too many arguments",
			"proc g(a: int) int {\n\treturn a\n}\nproc f() int {\n\treturn g(1, 2)\n}\n",
			"5: expected 1 arguments but found 2",
		},
		{
			"too few arguments",
			"proc g(a: int, b: int) {\n}\nproc f() {\n\tg(1)\n}\n",
			"4: expected 2 arguments but found 1",
		},
		{
			"argument mismatch",
			"proc g(p: *int) {\n}\nproc f() {\n\tg(1)\n}\n",
			`4: expected "*int" but found "int"`,
		},
		{
			"assignment mismatch",
			"proc f(p: *int) {\n\tp = 1\n}\n",
			`2: expected "*int" but found "int"`,
		},
		{
			"right operand mismatch",
			"proc f(p: *int) int {\n\treturn 1 +\n\t\tp\n}\n",
			`3: expected "int" but found "*int"`,
		},
		{
			"left operand mismatch",
			"proc f(p: *int) int {\n\treturn p * 2\n}\n",
			`2: expected "int" but found "*int"`,
		},
		{
			"procedure type as value",
			"proc f() {\n\tx := proc()\n}\n",
			"2: cannot use type expression as value",
		},
		{
			"procedure signature mismatch",
			"proc g(a: int) {\n}\nproc f() {\n\tx: proc() = g\n}\n",
			`4: expected "proc()" but found "proc(int)"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, tt.want)
		})
	}
}

func TestFirstErrorStopsChecking(t *testing.T) {
	file, err := syntax.Parse("test.cer", strings.NewReader(`
proc f() {
	x := y
	z := w
}
`), 0)
	if err != nil {
		t.Fatal(err)
	}

	var calls []string
	conf := &Config{
		Error: func(pos syntax.Pos, msg string) {
			calls = append(calls, pos.String()+": "+msg)
		},
	}
	_, err = Check("test.cer", file, conf, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(calls) != 1 {
		t.Fatalf("error handler called %d times, want 1: %v", len(calls), calls)
	}
	if want := `test.cer:3:7: unknown name "y"`; calls[0] != want {
		t.Errorf("handler got %q, want %q", calls[0], want)
	}
	terr := err.(*Error)
	if terr.Pos.Line() != 3 || terr.Msg != `unknown name "y"` {
		t.Errorf("err = %+v", terr)
	}
}

func TestFrameOffsets(t *testing.T) {
	pkg, info := expectNoErrors(t, `
proc f(a: int, b: *int) int {
	x := a
	{
		y: int
		x = y
	}
	z := *x
	return z^
}
`)

	proc := procByName(t, pkg, "f")
	want := []struct {
		name   string
		offset int64
		param  bool
	}{
		{"a", 8, true},
		{"b", 16, true},
		{"x", 24, false},
		{"y", 32, false},
		{"z", 40, false},
	}
	locals := proc.Locals()
	if len(locals) != len(want) {
		t.Fatalf("got %d locals, want %d", len(locals), len(want))
	}
	for i, w := range want {
		l := locals[i]
		if l.Name() != w.name || l.Offset() != w.offset || l.IsParam() != w.param {
			t.Errorf("locals[%d] = %s@%d param=%v, want %s@%d param=%v",
				i, l.Name(), l.Offset(), l.IsParam(), w.name, w.offset, w.param)
		}
	}

	if got := types.DefaultSizes.FrameSize(proc); got != 40 {
		t.Errorf("FrameSize = %d, want 40", got)
	}
	if got := types.DefaultSizes.AlignedFrameSize(proc); got != 48 {
		t.Errorf("AlignedFrameSize = %d, want 48", got)
	}

	// Every use of x resolves to the same slot.
	var xs []types.Object
	for name, obj := range info.Uses {
		if name.Value == "x" {
			xs = append(xs, obj)
		}
	}
	if len(xs) != 2 {
		t.Fatalf("got %d uses of x, want 2", len(xs))
	}
	for _, obj := range xs {
		if obj != locals[2] {
			t.Errorf("use of x bound to %v, want local at offset 24", obj)
		}
	}
}

func TestInfoDefsAndUses(t *testing.T) {
	file, err := syntax.Parse("test.cer", strings.NewReader(`
proc g(n: int) int {
	return n
}

proc main() int {
	v := g(1)
	return v
}
`), 0)
	if err != nil {
		t.Fatal(err)
	}
	info := NewInfo()
	pkg, err := Check("test.cer", file, nil, info)
	if err != nil {
		t.Fatal(err)
	}

	g := file.Procs[0]
	if info.Defs[g.Name] != pkg.Procs()[0] {
		t.Errorf("Defs[g] = %v, want the procedure object", info.Defs[g.Name])
	}
	if _, ok := info.Defs[g.Params[0].Name].(*types.Local); !ok {
		t.Errorf("Defs[n] = %T, want *types.Local", info.Defs[g.Params[0].Name])
	}

	main := file.Procs[1]
	decl := main.Body.Stmts[0].(*syntax.LocalDecl)
	local, ok := info.Defs[decl.Name].(*types.Local)
	if !ok {
		t.Fatalf("Defs[v] = %T, want *types.Local", info.Defs[decl.Name])
	}
	if local.Type().String() != "int" {
		t.Errorf("v has type %s, want int", local.Type())
	}

	call := decl.Value.(*syntax.CallExpr)
	if info.Uses[call.Fun.(*syntax.Name)] != pkg.Procs()[0] {
		t.Errorf("callee not bound to g")
	}
	if tv := info.Types[call]; tv.Type.String() != "int" || tv.IsVoid() || tv.IsAddressable() {
		t.Errorf("Types[g(1)] = %+v", tv)
	}

	ret := main.Body.Stmts[1].(*syntax.ReturnStmt)
	if info.Uses[ret.Result.(*syntax.Name)] != local {
		t.Errorf("return value not bound to v")
	}

	if s := info.Scopes[main]; s == nil || s.Comment() != "proc main" {
		t.Errorf("Scopes[main] = %v", s)
	}
	if s := info.Scopes[main.Body]; s == nil || s.Parent() != info.Scopes[main] {
		t.Errorf("body scope does not nest in the parameter scope")
	}
	if info.Scopes[file] != pkg.Scope() {
		t.Errorf("file scope is not the package scope")
	}
}

func TestVoidCall(t *testing.T) {
	file, err := syntax.Parse("test.cer", strings.NewReader("proc g() {\n}\nproc f() {\n\tg()\n}\n"), 0)
	if err != nil {
		t.Fatal(err)
	}
	info := NewInfo()
	if _, err := Check("test.cer", file, nil, info); err != nil {
		t.Fatal(err)
	}
	call := file.Procs[1].Body.Stmts[0].(*syntax.ExprStmt).X
	tv := info.Types[call]
	if !tv.IsVoid() || tv.IsAddressable() || tv.Type != nil {
		t.Errorf("Types[g()] = %+v, want no value", tv)
	}
}

func TestTypeExpressionsInterned(t *testing.T) {
	file, err := syntax.Parse("test.cer", strings.NewReader(`
proc f(a: *int, b: proc(*int) int) *int {
	c: *int = a
	d: proc(*int) int = b
	return c
}
`), 0)
	if err != nil {
		t.Fatal(err)
	}
	info := NewInfo()
	pkg, err := Check("test.cer", file, nil, info)
	if err != nil {
		t.Fatal(err)
	}

	decl := file.Procs[0]
	ptrs := []syntax.Expr{
		decl.Params[0].Type,
		decl.Result,
		decl.Body.Stmts[0].(*syntax.LocalDecl).Type,
	}
	want := pkg.Types().Pointer(pkg.Types().Int())
	for _, e := range ptrs {
		tv := info.Types[e]
		if tv.mode != typexpr {
			t.Errorf("%s is not recorded as a type", syntax.ExprString(e))
		}
		if tv.Type != want {
			t.Errorf("%s resolved to a different instance", syntax.ExprString(e))
		}
	}

	p1 := info.Types[decl.Params[1].Type].Type
	p2 := info.Types[decl.Body.Stmts[1].(*syntax.LocalDecl).Type].Type
	if p1 != p2 {
		t.Errorf("identical procedure types resolved to different instances")
	}
	if p1 == want {
		t.Errorf("distinct types share an instance")
	}
}

func TestCheckIdempotent(t *testing.T) {
	src := `
proc f(a: *int) *int {
	return a
}

proc main() int {
	x := 1
	return f(*x)^
}
`
	render := func() string {
		pkg, _ := expectNoErrors(t, src)
		var b strings.Builder
		for _, p := range pkg.Procs() {
			b.WriteString(p.Name() + " " + p.Signature().String() + "\n")
			for _, l := range p.Locals() {
				b.WriteString("  " + l.Name() + ": " + l.Type().String() + "\n")
			}
		}
		b.WriteString(pkg.Scope().String())
		return b.String()
	}

	if a, b := render(), render(); a != b {
		t.Errorf("two checks differ:\n%s\n---\n%s", a, b)
	}
}
