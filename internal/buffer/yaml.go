package buffer

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAMLSeq renders b as a flow-style YAML sequence of integers, e.g.
// [0, 1, 171, 255].
func MarshalYAMLSeq(b []byte) *yaml.Node {
	seq := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Style:   yaml.FlowStyle,
		Content: make([]*yaml.Node, len(b)),
	}
	for i, c := range b {
		seq.Content[i] = &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(int(c)),
		}
	}
	return seq
}

// UnmarshalYAMLSeq decodes a YAML sequence of exactly len(dst) integers into
// dst with the same arity rules as UnmarshalJSONSeq.
func UnmarshalYAMLSeq(dst []byte, value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.SequenceNode {
		desc := fmt.Sprintf("invalid type %s, expected a sequence of %d "+
			"elements", value.ShortTag(), len(dst))
		return makeError(ErrNotSequence, 0, desc)
	}

	for i := range dst {
		if i >= len(value.Content) {
			return lengthError(i, len(dst))
		}
		var v uint8
		if err := value.Content[i].Decode(&v); err != nil {
			desc := fmt.Sprintf("invalid element %q at index %d, expected "+
				"an integer in 0..255", value.Content[i].Value, i)
			return makeError(ErrInvalidElement, i, desc)
		}
		dst[i] = v
	}
	if len(value.Content) > len(dst) {
		return lengthError(len(dst)+1, len(dst))
	}
	return nil
}
