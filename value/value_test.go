/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package value

import (
	"errors"
	"testing"

	"github.com/formerly-a-trickster/midas/util"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, true},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), true},
		{Double(0), true},
		{String(""), true},
	}

	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestEqualPromotesNumerics(t *testing.T) {
	if !Int(2).Equal(Double(2.0)) {
		t.Error("expected Int(2) to equal Double(2.0)")
	}
	if Int(2).Equal(Double(2.5)) {
		t.Error("expected Int(2) to not equal Double(2.5)")
	}
}

func TestEqualSymmetric(t *testing.T) {
	pairs := [][2]Value{
		{Int(2), Double(2.0)},
		{String("a"), String("a")},
		{Nil, Nil},
		{Bool(true), Bool(true)},
		{Int(1), String("1")},
	}

	for _, p := range pairs {
		if p[0].Equal(p[1]) != p[1].Equal(p[0]) {
			t.Errorf("Equal is not symmetric for %v and %v", p[0], p[1])
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	pairs := [][2]Value{
		{Int(1), Int(2)},
		{Double(1.5), Int(2)},
		{String("a"), String("b")},
		{String("same"), String("same")},
	}

	for _, p := range pairs {
		cmp1, ok1 := p[0].Compare(p[1])
		cmp2, ok2 := p[1].Compare(p[0])

		if !ok1 || !ok2 {
			t.Fatalf("expected %v and %v to be orderable", p[0], p[1])
		}
		if cmp1 != -cmp2 {
			t.Errorf("Compare is not antisymmetric: %v vs %v gave %d and %d", p[0], p[1], cmp1, cmp2)
		}
	}
}

func TestCompareIncompatibleKinds(t *testing.T) {
	if _, ok := String("a").Compare(Int(1)); ok {
		t.Error("expected string and int to be non-orderable")
	}
}

func TestArithmeticIntPromotion(t *testing.T) {
	r, err := Add(Int(1), Int(2))
	if err != nil || r.Kind != KindInt || r.AsInt() != 3 {
		t.Errorf("Int(1)+Int(2) = %v, %v", r, err)
	}

	r, err = Add(Int(1), Double(2.5))
	if err != nil || r.Kind != KindDouble || r.AsDouble() != 3.5 {
		t.Errorf("Int(1)+Double(2.5) = %v, %v", r, err)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	_, err := Add(String("a"), Int(1))
	if !errors.Is(err, util.ErrTypeMismatch) {
		t.Error("expected type mismatch error, got:", err)
	}
}

func TestIntDivByZero(t *testing.T) {
	_, err := IntDiv(Int(1), Int(0))
	if !errors.Is(err, util.ErrDivideByZero) {
		t.Error("expected divide by zero error, got:", err)
	}
}

func TestModRequiresInts(t *testing.T) {
	_, err := Mod(Double(1.5), Int(1))
	if !errors.Is(err, util.ErrTypeMismatch) {
		t.Error("expected type mismatch error, got:", err)
	}
}

func TestNegPreservesKind(t *testing.T) {
	r, _ := Neg(Int(5))
	if r.Kind != KindInt || r.AsInt() != -5 {
		t.Errorf("Neg(Int(5)) = %v", r)
	}

	r, _ = Neg(Double(5.5))
	if r.Kind != KindDouble || r.AsDouble() != -5.5 {
		t.Errorf("Neg(Double(5.5)) = %v", r)
	}
}

func TestStringConversion(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Int(42), "42"},
		{String("hi"), "hi"},
	}

	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}
