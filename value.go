/*
 * value.go, part of gofeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package feff

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

//Kind is the type of the content of a tag Value.
type Kind int

const (
	Text Kind = iota
	Int
	Float
	Bool
	List
)

//Scalar is one element of a list-valued tag: an integer or a float,
//whichever the token looked like.
type Scalar struct {
	isFloat bool
	i       int
	f       float64
}

//IntScalar returns a Scalar holding the integer i.
func IntScalar(i int) Scalar {
	return Scalar{i: i}
}

//FloatScalar returns a Scalar holding the float f.
func FloatScalar(f float64) Scalar {
	return Scalar{isFloat: true, f: f}
}

//IsFloat returns whether the scalar holds a float.
func (s Scalar) IsFloat() bool { return s.isFloat }

//Int returns the scalar as an integer, truncating if it holds a float.
func (s Scalar) Int() int {
	if s.isFloat {
		return int(s.f)
	}
	return s.i
}

//Float64 returns the scalar as a float64.
func (s Scalar) Float64() float64 {
	if s.isFloat {
		return s.f
	}
	return float64(s.i)
}

//Equal returns whether the two scalars hold the same kind and the same
//number. An integer 2 and a float 2.0 are not equal: they serialize
//differently.
func (s Scalar) Equal(o Scalar) bool {
	if s.isFloat != o.isFloat {
		return false
	}
	if s.isFloat {
		return s.f == o.f
	}
	return s.i == o.i
}

func (s Scalar) String() string {
	if s.isFloat {
		return formatFloat(s.f)
	}
	return strconv.Itoa(s.i)
}

//formatFloat writes floats the canonical way for tag serialization:
//shortest representation that keeps a decimal point or exponent, so
//that a reparse yields a float again.
func formatFloat(f float64) string {
	str := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(str, ".eE") {
		str = str + ".0"
	}
	return str
}

//Value is the typed content of a tag: an integer, a float, a boolean,
//an ordered list of scalars, or plain text for everything that would
//not parse. The zero Value is empty text.
type Value struct {
	kind Kind
	i    int
	f    float64
	b    bool
	s    string
	list []Scalar
}

//TextValue returns a Value holding plain text.
func TextValue(s string) *Value {
	return &Value{kind: Text, s: s}
}

//IntValue returns a Value holding an integer.
func IntValue(i int) *Value {
	return &Value{kind: Int, i: i}
}

//FloatValue returns a Value holding a float.
func FloatValue(f float64) *Value {
	return &Value{kind: Float, f: f}
}

//BoolValue returns a Value holding a boolean.
func BoolValue(b bool) *Value {
	return &Value{kind: Bool, b: b}
}

//ListValue returns a Value holding the given scalars. The slice is not
//copied; the caller should not modify it afterwards.
func ListValue(list []Scalar) *Value {
	return &Value{kind: List, list: list}
}

//Kind returns the kind of the value.
func (v *Value) Kind() Kind { return v.kind }

//Int returns the integer content. Only meaningful for Int values.
func (v *Value) Int() int { return v.i }

//Float64 returns the float content. Only meaningful for Float values.
func (v *Value) Float64() float64 { return v.f }

//Bool returns the boolean content. Only meaningful for Bool values.
func (v *Value) Bool() bool { return v.b }

//Text returns the text content. Only meaningful for Text values.
func (v *Value) Text() string { return v.s }

//List returns a copy of the scalar list. Only meaningful for List values.
func (v *Value) List() []Scalar {
	ret := make([]Scalar, len(v.list))
	copy(ret, v.list)
	return ret
}

//Equal returns whether the two values have the same kind and content.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Int:
		return v.i == o.i
	case Float:
		return v.f == o.f
	case Bool:
		return v.b == o.b
	case List:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	}
	return v.s == o.s
}

//String serializes the value as it appears on a tag line. List scalars
//are space-joined.
func (v *Value) String() string {
	switch v.kind {
	case Int:
		return strconv.Itoa(v.i)
	case Float:
		return formatFloat(v.f)
	case Bool:
		if v.b {
			return "T"
		}
		return "F"
	case List:
		parts := make([]string, len(v.list))
		for i, s := range v.list {
			parts[i] = s.String()
		}
		return strings.Join(parts, " ")
	}
	return v.s
}

//The count*value repetition shorthand, e.g. "3*1.5". Only the prefix of
//the token needs to match; trailing junk is ignored.
var repeatShorthand = regexp.MustCompile(`^(\d+)\*([\d.+-]+)`)

//A boolean tag value must start, after at least one non-word character,
//with T, t, F or f.
var boolValue = regexp.MustCompile(`^\W+([TtFf])`)

func normalizeTag(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

//smartScalar parses a numeric token: anything with a decimal point or an
//exponent is a float, the rest are integers.
func smartScalar(tok string) (Scalar, error) {
	if strings.Contains(tok, ".") || strings.ContainsAny(tok, "eE") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Scalar{}, err
		}
		return FloatScalar(f), nil
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return Scalar{}, err
	}
	return IntScalar(i), nil
}

//capitalize upper-cases the first letter of s and leaves the rest alone.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

//Coerce converts the raw string of a tag to its proper type. The tag
//class is decided in a fixed order: every recognized tag is
//list-capable, then come the (reserved, currently empty) boolean tags,
//then the float tags and the integer tags. That order must not change:
//it is what keeps documents written by other FEFF tooling stable across
//a read/write cycle.
//
//A value that fails numeric or list parsing is not an error: it is kept
//as capitalized plain text, so loosely formatted legacy documents
//survive a read/write cycle. Only a malformed boolean-class value is
//reported, as a critical validation error.
func Coerce(key, raw string) (*Value, error) {
	key = normalizeTag(key)
	raw = strings.TrimSpace(raw)
	fallback := TextValue(capitalize(raw))
	if validFeffTags[key] {
		toks := strings.Fields(raw)
		list := make([]Scalar, 0, len(toks))
		for _, tok := range toks {
			if m := repeatShorthand.FindStringSubmatch(tok); m != nil {
				n, err := strconv.Atoi(m[1])
				if err != nil {
					return fallback, nil
				}
				sc, err := smartScalar(m[2])
				if err != nil {
					return fallback, nil
				}
				for j := 0; j < n; j++ {
					list = append(list, sc)
				}
				continue
			}
			sc, err := smartScalar(tok)
			if err != nil {
				return fallback, nil
			}
			list = append(list, sc)
		}
		return ListValue(list), nil
	}
	if booleanTypeTags[key] {
		if m := boolValue.FindStringSubmatch(raw); m != nil {
			return BoolValue(m[1] == "T" || m[1] == "t"), nil
		}
		return nil, newError(ErrValidation, true, "%s should be a boolean type!", key)
	}
	if floatTypeTags[key] {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fallback, nil
		}
		return FloatValue(f), nil
	}
	if intTypeTags[key] {
		i, err := strconv.Atoi(raw)
		if err != nil {
			return fallback, nil
		}
		return IntValue(i), nil
	}
	return fallback, nil
}
