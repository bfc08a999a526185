/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/formerly-a-trickster/midas/parser"
)

func runSource(t *testing.T, source string) (string, error) {
	t.Helper()

	prog, err := parser.Parse("test", source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	var out bytes.Buffer
	ip := New("test", &out, nil)
	err = ip.Run(prog)
	return out.String(), err
}

func TestPrintArithmetic(t *testing.T) {
	out, err := runSource(t, "print 1 + 2 * 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "7" {
		t.Errorf("got %q, want %q", out, "7")
	}
}

func TestVarScopingAcrossBlocks(t *testing.T) {
	out, err := runSource(t, `
var x = 1;
do
    var x = 2;
    print x;
end
print x;
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "2\n1" {
		t.Errorf("got %q, want shadowed-then-restored values", out)
	}
}

func TestWhileBreak(t *testing.T) {
	out, err := runSource(t, `
var i = 0;
while (true) do
    if (i == 3) do
        break;
    end
    print i;
    i = i + 1;
end
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "0\n1\n2" {
		t.Errorf("got %q", out)
	}
}

func TestForLoop(t *testing.T) {
	out, err := runSource(t, `
for (var i = 0; i < 3; i = i + 1) do
    print i;
end
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "0\n1\n2" {
		t.Errorf("got %q", out)
	}
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := runSource(t, `
fun add(a, b) do
    return a + b;
end

print add(2, 3);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "5" {
		t.Errorf("got %q", out)
	}
}

func TestFunctionDoesNotCloseOverCallerLocals(t *testing.T) {
	_, err := runSource(t, `
do
    var secret = 1;
    fun f() do
        print secret;
    end
    f();
end
`)
	if err == nil {
		t.Error("expected an undeclared-variable error: functions only see the global frame")
	}
}

func TestRecursion(t *testing.T) {
	out, err := runSource(t, `
fun fact(n) do
    if (n <= 1) do
        return 1;
    end
    return n * fact(n - 1);
end

print fact(5);
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "120" {
		t.Errorf("got %q", out)
	}
}

func TestArityMismatch(t *testing.T) {
	_, err := runSource(t, `
fun f(a, b) do
    return a;
end
f(1);
`)
	if err == nil {
		t.Error("expected an arity mismatch error")
	}
}

func TestShortCircuitOr(t *testing.T) {
	// The right side must never be evaluated: calling an undeclared
	// function would error if it were.
	out, err := runSource(t, `
print true or undeclared_fn();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("got %q", out)
	}
}

func TestShortCircuitAnd(t *testing.T) {
	out, err := runSource(t, `
print false and undeclared_fn();
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "false" {
		t.Errorf("got %q", out)
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := runSource(t, "print 1 // 0;")
	if err == nil {
		t.Error("expected a division by zero error")
	}
}

func TestTypeMismatchOrdering(t *testing.T) {
	_, err := runSource(t, `print "a" < 1;`)
	if err == nil {
		t.Error("expected a type mismatch ordering nonorderable kinds")
	}
}

func TestUndeclaredVariableErrors(t *testing.T) {
	_, err := runSource(t, "print never_declared;")
	if err == nil {
		t.Error("expected an undeclared variable error")
	}
}

func TestCallDepthExceeded(t *testing.T) {
	_, err := runSource(t, `
fun loop(n) do
    return loop(n + 1);
end
loop(0);
`)
	if err == nil {
		t.Error("expected unbounded recursion to hit the call depth guard")
	}
}
