package config

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// errUnsupportedNode marks YAML constructs the literal-preserving conversion
// leaves to yaml.YAMLToJSON (aliases, tags, merge keys, non-finite floats).
var errUnsupportedNode = errors.New("unsupported yaml node")

// toJSON converts a definition document to JSON. JSON input is returned
// unchanged. YAML number literals are copied verbatim so that values such
// as 21.50 keep their trailing zeros.
func toJSON(data []byte) ([]byte, error) {
	if json.Valid(data) {
		return data, nil
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(file.Docs) == 1 && file.Docs[0].Body != nil {
		var buf bytes.Buffer
		err := writeNode(&buf, file.Docs[0].Body)
		if err == nil {
			return buf.Bytes(), nil
		}
		if !errors.Is(err, errUnsupportedNode) {
			return nil, err
		}
	}

	return yaml.YAMLToJSON(data)
}

func writeNode(buf *bytes.Buffer, node ast.Node) error {
	switch n := node.(type) {
	case *ast.MappingNode:
		buf.WriteByte('{')
		for i, pair := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writePair(buf, pair); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case *ast.MappingValueNode:
		buf.WriteByte('{')
		if err := writePair(buf, n); err != nil {
			return err
		}
		buf.WriteByte('}')
	case *ast.SequenceNode:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *ast.AnchorNode:
		return writeNode(buf, n.Value)
	case *ast.IntegerNode:
		return writeNumber(buf, n.Token.Value, n.Value)
	case *ast.FloatNode:
		return writeNumber(buf, n.Token.Value, n.Value)
	case *ast.StringNode:
		return writeJSON(buf, n.Value)
	case *ast.LiteralNode:
		return writeJSON(buf, n.Value.Value)
	case *ast.BoolNode:
		return writeJSON(buf, n.Value)
	case *ast.NullNode:
		buf.WriteString("null")
	default:
		return errUnsupportedNode
	}
	return nil
}

func writePair(buf *bytes.Buffer, pair *ast.MappingValueNode) error {
	var key string
	switch k := pair.Key.(type) {
	case *ast.StringNode:
		key = k.Value
	case *ast.IntegerNode:
		key = k.Token.Value
	case *ast.FloatNode:
		key = k.Token.Value
	case *ast.BoolNode:
		key = k.Token.Value
	default:
		return errUnsupportedNode
	}
	if err := writeJSON(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	if pair.Value == nil {
		buf.WriteString("null")
		return nil
	}
	return writeNode(buf, pair.Value)
}

// writeNumber copies literal when it is already a JSON number and falls
// back to the parsed value for YAML-only spellings such as 0x1F or .5.
func writeNumber(buf *bytes.Buffer, literal string, parsed interface{}) error {
	if literal != "" && literal[0] != '+' && literal[0] != '"' && json.Valid([]byte(literal)) {
		buf.WriteString(literal)
		return nil
	}
	return writeJSON(buf, parsed)
}

func writeJSON(buf *bytes.Buffer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
