package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/npillmayer/refined/result"
	"gopkg.in/yaml.v3"
)

// Parse reads a JSON document into a Value. Field order of objects is
// preserved, which is why we walk the token stream instead of unmarshalling
// into a Go map.
func Parse(data []byte) result.Result[Value] {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseNext(dec)
	if err != nil {
		tracer().Debugf("JSON parse failed: %v", err)
		return result.Err[Value](Errorf("malformed document: %v", err))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return result.Err[Value](Errorf("trailing content after document"))
	}
	return result.Ok(v)
}

func parseNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := Value{kind: KindObject}
			for dec.More() {
				nameTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				name, ok := nameTok.(string)
				if !ok {
					return Value{}, errors.New("object member name is not a string")
				}
				val, err := parseNext(dec)
				if err != nil {
					return Value{}, err
				}
				obj.fields = append(obj.fields, Member{Name: name, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return obj, nil
		case '[':
			arr := Value{kind: KindArray}
			for dec.More() {
				val, err := parseNext(dec)
				if err != nil {
					return Value{}, err
				}
				arr.items = append(arr.items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return arr, nil
		}
		return Value{}, errors.New("unexpected delimiter")
	case string:
		return StringValue(t), nil
	case json.Number:
		return NumberValue(t), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	}
	return Value{}, errors.New("unexpected token")
}

// ParseYAML reads a YAML document into a Value. yaml.Node keeps mapping
// entries in document order, so objects come out ordered just as with Parse.
func ParseYAML(data []byte) result.Result[Value] {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		tracer().Debugf("YAML parse failed: %v", err)
		return result.Err[Value](Errorf("malformed document: %v", err))
	}
	node := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return result.Ok(NullValue())
		}
		node = doc.Content[0]
	}
	v, err := fromYAMLNode(node)
	if err != nil {
		return result.Err[Value](Errorf("malformed document: %v", err))
	}
	return result.Ok(v)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := Value{kind: KindObject}
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			obj.fields = append(obj.fields, Member{Name: n.Content[i].Value, Value: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := Value{kind: KindArray}
		for _, item := range n.Content {
			val, err := fromYAMLNode(item)
			if err != nil {
				return Value{}, err
			}
			arr.items = append(arr.items, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return NullValue(), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return Value{}, err
			}
			return BoolValue(b), nil
		case "!!int", "!!float":
			return NumberValue(json.Number(n.Value)), nil
		default:
			return StringValue(n.Value), nil
		}
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	}
	return Value{}, errors.New("unsupported node kind")
}
