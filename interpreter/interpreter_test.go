// File: golox/interpreter/interpreter_test.go
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/resolver"
)

// run lexes, parses, resolves, and interprets src, returning everything
// printed to standard output. It fails the test immediately on a lex,
// parse, or resolver error, mirroring the exit-65 path a real run takes.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var diag bytes.Buffer
	reporter := loxerror.New(&diag)

	tokens := lexer.New(src, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError(), "static error: %s", diag.String())

	depths := resolver.New(reporter).Resolve(stmts)
	require.False(t, reporter.HadError(), "resolver error: %s", diag.String())

	var out bytes.Buffer
	in := New(&out, reporter, depths)
	err := in.Interpret(stmts)
	return out.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, lines(out))
}

func TestInterpret_ClosureCapturesDefiningScopeNotCallerShadow(t *testing.T) {
	out, err := run(t, `
		var a = "global";
		{
			fun show() { print a; }
			var a = "block";
			show();
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"global"}, lines(out))
}

func TestInterpret_RecursiveFibonacci(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"55"}, lines(out))
}

func TestInterpret_SuperCallsThroughInheritance(t *testing.T) {
	out, err := run(t, `
		class A {
			greet() { print "A"; }
		}
		class B < A {
			greet() {
				super.greet();
				print "B";
			}
		}
		B().greet();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, lines(out))
}

func TestInterpret_InitializerBindsFields(t *testing.T) {
	out, err := run(t, `
		class Point {
			init(x, y) {
				this.x = x;
				this.y = y;
			}
		}
		var p = Point(3, 4);
		print p.x;
		print p.y;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, lines(out))
}

func TestInterpret_InitAlwaysReturnsThisEvenWithBareReturn(t *testing.T) {
	out, err := run(t, `
		class Thing {
			init() {
				return;
			}
		}
		print Thing();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thing instance"}, lines(out))
}

func TestInterpret_RuntimeErrorInsideInitializerPropagates(t *testing.T) {
	_, err := run(t, `
		class Foo {
			init() { print 1 / 0; }
		}
		Foo();
	`)
	assert.Error(t, err)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestInterpret_EmptyProgramProducesNoOutputAndNoError(t *testing.T) {
	out, err := run(t, ``)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	assert.Error(t, err)
}

func TestInterpret_DivisionOfZeroNumeratorIsZero(t *testing.T) {
	out, err := run(t, `print 0 / 5;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, lines(out))
}

func TestInterpret_WrongArityOnClassCallIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		class Point {
			init(x, y) { this.x = x; this.y = y; }
		}
		Point(1);
	`)
	assert.Error(t, err)
}

func TestInterpret_UninitializedVarPrintsNil(t *testing.T) {
	out, err := run(t, `var x; print x;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"nil"}, lines(out))
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "a" + "b";`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, lines(out))
}

func TestInterpret_MixedStringNumberAdditionIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	assert.Error(t, err)
}

func TestInterpret_BlockShadowingDoesNotMutateOuter(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		{
			var a = 2;
			print a;
		}
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, lines(out))
}

func TestInterpret_MethodBindingIsIdempotentByDeclaration(t *testing.T) {
	out, err := run(t, `
		class Counter {
			get() { return this.n; }
		}
		var c = Counter();
		c.n = 5;
		var m1 = c.get;
		var m2 = c.get;
		print m1();
		print m2();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "5"}, lines(out))
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	assert.Error(t, err)
}

func TestInterpret_AccessingPropertyOnNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		print x.foo;
	`)
	assert.Error(t, err)
}

func TestInterpret_ClockIsRegisteredAndCallable(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, lines(out))
}
