package lox

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseSource(src string) ([]Stmt, *mockReporter, error) {
	report := newMockReporter()
	toks := NewScanner([]byte(src), report).Scan()
	stmts, err := NewParser(toks, report).Parse()
	return stmts, report, err
}

func TestParseExpressions(t *testing.T) {
	testCases := []struct {
		src  string
		tree string
	}{
		// primary
		{`3.14;`, `(; 3.14)`},
		{`"a string";`, `(; "a string")`},
		{`true;`, `(; true)`},
		{`false;`, `(; false)`},
		{`nil;`, `(; nil)`},
		{`x;`, `(; x)`},
		{`(3.14);`, `(; (group 3.14))`},
		// unary
		{`-3.14;`, `(; (- 3.14))`},
		{`!true;`, `(; (! true))`},
		{`!-x;`, `(; (! (- x)))`},
		{`--3;`, `(; (- (- 3)))`},
		// binary precedence and associativity
		{`1 + 2 * 3;`, `(; (+ 1 (* 2 3)))`},
		{`1 * 2 + 3;`, `(; (+ (* 1 2) 3))`},
		{`1 - 2 - 3;`, `(; (- (- 1 2) 3))`},
		{`8 / 4 / 2;`, `(; (/ (/ 8 4) 2))`},
		{`-1 / 2;`, `(; (/ (- 1) 2))`},
		{`(1 + 2) * 3;`, `(; (* (group (+ 1 2)) 3))`},
		{`1 < 2 == 3 >= 4;`, `(; (== (< 1 2) (>= 3 4)))`},
		{`1 != 2 == true;`, `(; (== (!= 1 2) true))`},
		{`a > b + 1;`, `(; (> a (+ b 1)))`},
		// logical
		{`a or b and c;`, `(; (or a (and b c)))`},
		{`a and b or c;`, `(; (or (and a b) c))`},
		{`a or b or c;`, `(; (or (or a b) c))`},
		{`a == 1 and b;`, `(; (and (== a 1) b))`},
		// assignment
		{`a = 1;`, `(; (= a 1))`},
		{`a = b = 1;`, `(; (= a (= b 1)))`},
		{`a = b or c;`, `(; (= a (or b c)))`},
		// calls
		{`f();`, `(; (call f))`},
		{`f(1, "two", x + 3);`, `(; (call f 1 "two" (+ x 3)))`},
		{`f()(1)(2, 3);`, `(; (call (call (call f) 1) 2 3))`},
		{`-f(1);`, `(; (- (call f 1)))`},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		stmts, report, err := parseSource(tc.src)

		assert.NoError(err, "source %s", tc.src)
		assert.False(report.HadError())
		assert.Equal(tc.tree+"\n", printer.PrintStmts(stmts), "source %s", tc.src)
	}
}

func TestParseStatements(t *testing.T) {
	testCases := []struct {
		src  string
		tree string
	}{
		{`print 1;`, `(print 1)`},
		{`var a;`, `(var a)`},
		{`var a = 1 + 2;`, `(var a (+ 1 2))`},
		{`{ var a = 1; print a; }`, `(block (var a 1) (print a))`},
		{`{}`, `(block)`},
		{`if (a) print 1;`, `(if a (print 1))`},
		{`if (a) print 1; else print 2;`, `(if a (print 1) (print 2))`},
		{`if (a) if (b) print 1; else print 2;`, `(if a (if b (print 1) (print 2)))`},
		{`while (true) { x = x - 1; }`, `(while true (block (; (= x (- x 1)))))`},
		{`while (x) break;`, `(while x (break))`},
		{`while (x) continue;`, `(while x (continue))`},
		{`break;`, `(break)`},
		{`continue;`, `(continue)`},
		{`fun f() {}`, `(fun f ())`},
		{`fun add(a, b) { return a + b; }`, `(fun add (a b) (return (+ a b)))`},
		{`fun f() { return; }`, `(fun f () (return))`},
		{`return;`, `(return)`},
		{`return 1;`, `(return 1)`},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		stmts, report, err := parseSource(tc.src)

		assert.NoError(err, "source %s", tc.src)
		assert.False(report.HadError())
		assert.Equal(tc.tree+"\n", printer.PrintStmts(stmts), "source %s", tc.src)
	}
}

func TestParseForDesugaring(t *testing.T) {
	testCases := []struct {
		src  string
		tree string
	}{
		{
			`for (var i = 0; i < 3; i = i + 1) print i;`,
			`(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))`,
		},
		{
			`for (i = 0; i < 1;) continue;`,
			`(block (; (= i 0)) (while (< i 1) (continue)))`,
		},
		{
			`for (; x;) print x;`,
			`(while x (print x))`,
		},
		{
			`for (;;) break;`,
			`(while true (break))`,
		},
		{
			`for (;; i = i + 1) { print i; }`,
			`(while true (block (block (print i)) (; (= i (+ i 1)))))`,
		},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		stmts, report, err := parseSource(tc.src)

		assert.NoError(err, "source %s", tc.src)
		assert.False(report.HadError())
		assert.Equal(tc.tree+"\n", printer.PrintStmts(stmts), "source %s", tc.src)
	}
}

func TestParseForMarksIncrement(t *testing.T) {
	assert := assert.New(t)

	stmts, _, err := parseSource(`for (;; i = i + 1) print i;`)
	assert.NoError(err)
	loop, ok := stmts[0].(*WhileStmt)
	assert.True(ok)
	assert.True(loop.HasIncrement)
	body, ok := loop.Body.(*BlockStmt)
	assert.True(ok)
	assert.Len(body.Stmts, 2)
	assert.IsType(&ExpressionStmt{}, body.Stmts[1])

	stmts, _, err = parseSource(`for (;;) print i;`)
	assert.NoError(err)
	loop, ok = stmts[0].(*WhileStmt)
	assert.True(ok)
	assert.False(loop.HasIncrement)
}

func TestParseIsDeterministic(t *testing.T) {
	src := `
fun fib(n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}
for (var i = 0; i < 10; i = i + 1) print fib(i);
`
	first, _, err := parseSource(src)
	assert.NoError(t, err)
	second, _, err := parseSource(src)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		src    string
		errors []string
		tree   string
	}{
		{
			`var = 1; print 2;`,
			[]string{`[column: 5, line 1] Error at '=': Expect variable name.`},
			"(error)\n(print 2)\n",
		},
		{
			`print 1`,
			[]string{`[column: 8, line 1] Error at end of file: Expect ';' after value.`},
			"(error)\n",
		},
		{
			`1 = 2;`,
			[]string{`[column: 3, line 1] Error at '=': Invalid assignment target.`},
			"(; 1)\n",
		},
		{
			`(a) = 2;`,
			[]string{`[column: 5, line 1] Error at '=': Invalid assignment target.`},
			"(; (group a))\n",
		},
		{
			`var 1; var 2; print 3;`,
			[]string{
				`[column: 5, line 1] Error at '1': Expect variable name.`,
				`[column: 12, line 1] Error at '2': Expect variable name.`,
			},
			"(error)\n(error)\n(print 3)\n",
		},
		{
			"(1 + 2;\nprint 3;",
			[]string{`[column: 7, line 1] Error at ';': Expect ')' after expression.`},
			"(error)\n(print 3)\n",
		},
		{
			`{ print 1;`,
			[]string{`[column: 11, line 1] Error at end of file: Expect '}' after block.`},
			"(error)\n",
		},
		{
			"print 1 +;\nvar x = 2;",
			[]string{`[column: 10, line 1] Error at ';': Expect expression.`},
			"(error)\n(var x 2)\n",
		},
		{
			"x = 1 print x; fun f( { }",
			[]string{
				`[column: 7, line 1] Error at 'print': Expect ';' after expression.`,
				`[column: 23, line 1] Error at '{': Expect parameter name.`,
			},
			"(error)\n(error)\n",
		},
		{
			`break`,
			[]string{`[column: 6, line 1] Error at end of file: Expect ';' after 'break'.`},
			"(error)\n",
		},
	}

	assert := assert.New(t)
	printer := new(AstPrinter)
	for _, tc := range testCases {
		stmts, report, err := parseSource(tc.src)

		assert.Error(err, "source %s", tc.src)
		assert.True(errors.Is(err, ErrSyntax))
		assert.True(report.HadError())
		assert.Equal(tc.errors, report.messages(), "source %s", tc.src)
		assert.Equal(tc.tree, printer.PrintStmts(stmts), "source %s", tc.src)
	}
}

func TestParseTooManyArguments(t *testing.T) {
	args := make([]string, 256)
	params := make([]string, 256)
	for i := range args {
		args[i] = "1"
		params[i] = fmt.Sprintf("p%d", i)
	}

	assert := assert.New(t)

	stmts, report, err := parseSource("f(" + strings.Join(args, ", ") + ");")
	assert.ErrorIs(err, ErrSyntax)
	assert.Len(report.errors, 1)
	assert.Contains(report.errors[0].Error(), "Can't have more than 255 arguments.")
	// reported without aborting the declaration
	assert.Len(stmts, 1)
	assert.NotNil(stmts[0])

	stmts, report, err = parseSource("fun f(" + strings.Join(params, ", ") + ") {}")
	assert.ErrorIs(err, ErrSyntax)
	assert.Len(report.errors, 1)
	assert.Contains(report.errors[0].Error(), "Can't have more than 255 parameters.")
	assert.Len(stmts, 1)
	assert.NotNil(stmts[0])

	_, report, err = parseSource("f(" + strings.Join(args[:255], ", ") + ");")
	assert.NoError(err)
	assert.False(report.HadError())
}
