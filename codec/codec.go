/*
Package codec carries the serialization capability consumed by the enum and
refined packages. It models a document fragment as a Value tree with ordered
object fields, parses Values from JSON or YAML, and renders them back to
JSON text. The JSON and YAML grammars themselves are delegated to
encoding/json and gopkg.in/yaml.v3; this package never tokenizes documents
on its own.

Object fields keep their document order. The stdlib JSON front end therefore
walks the token stream instead of unmarshalling into a Go map, and the YAML
front end reads yaml.Node content pairs.
*/
package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'refined.codec'.
func tracer() tracing.Trace {
	return tracing.Select("refined.codec")
}

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is one node of a serialized document fragment. The zero value is null.
type Value struct {
	kind   Kind
	flag   bool
	num    json.Number
	str    string
	items  []Value
	fields []Member
}

// Member is a named field of an object Value. Order of members is significant.
type Member struct {
	Name  string
	Value Value
}

// --- Constructors ----------------------------------------------------------

func NullValue() Value {
	return Value{kind: KindNull}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// NumberValue wraps a raw decimal literal. The literal is kept verbatim, so
// integers round-trip without a float detour.
func NumberValue(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

func IntValue(n int) Value {
	return NumberValue(json.Number(strconv.Itoa(n)))
}

func FloatValue(f float64) Value {
	return NumberValue(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

func ObjectValue(fields ...Member) Value {
	return Value{kind: KindObject, fields: fields}
}

// --- Accessors -------------------------------------------------------------

func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the payload of a string Value ("" for other kinds).
func (v Value) Str() string {
	return v.str
}

// Num returns the literal of a number Value ("" for other kinds).
func (v Value) Num() json.Number {
	return v.num
}

// Boolean returns the payload of a bool Value (false for other kinds).
func (v Value) Boolean() bool {
	return v.flag
}

// Items returns the elements of an array Value.
func (v Value) Items() []Value {
	return v.items
}

// Fields returns the members of an object Value, in document order.
func (v Value) Fields() []Member {
	return v.fields
}

// --- Rendering -------------------------------------------------------------

// JSON renders the Value as compact JSON text. Object fields appear in their
// stored order.
func (v Value) JSON() string {
	var sb strings.Builder
	v.writeJSON(&sb)
	return sb.String()
}

func (v Value) writeJSON(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.flag))
	case KindNumber:
		if v.num == "" {
			sb.WriteString("0")
		} else {
			sb.WriteString(string(v.num))
		}
	case KindString:
		quoted, _ := json.Marshal(v.str)
		sb.Write(quoted)
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.writeJSON(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			quoted, _ := json.Marshal(f.Name)
			sb.Write(quoted)
			sb.WriteByte(':')
			f.Value.writeJSON(sb)
		}
		sb.WriteByte('}')
	}
}

func (v Value) String() string {
	return v.JSON()
}

// --- Decode errors ---------------------------------------------------------

// DecodeError is the failure value of every decode operation in this module.
type DecodeError struct {
	Msg string
}

func (e DecodeError) Error() string {
	return e.Msg
}

// Errorf builds a DecodeError from a format string.
func Errorf(format string, args ...any) error {
	return DecodeError{Msg: fmt.Sprintf(format, args...)}
}
