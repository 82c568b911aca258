package commands

import (
	"encoding"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"keybuf/internal/buffer"
	domaintypes "keybuf/internal/domain/types"
)

// errNoValue is returned for null or empty input, which would otherwise
// leave the buffer zeroed without having decoded anything.
var errNoValue = errors.New("input holds no value")

// decodable is the method set decode needs from a buffer pointer.
type decodable[T any] interface {
	*T
	fmt.Stringer
	encoding.BinaryUnmarshaler
	json.Unmarshaler
	Len() int
}

type decodeFunc func(format string, data []byte) (rendered string, n int, err error)

// decoders maps type names to strict decoders for them.
var decoders = map[string]decodeFunc{
	"X25519Public":         decodeAs[domaintypes.X25519Public],
	"X25519Private":        decodeAs[domaintypes.X25519Private],
	"Ed25519Public":        decodeAs[domaintypes.Ed25519Public],
	"Ed25519Private":       decodeAs[domaintypes.Ed25519Private],
	"Ed25519Signature":     decodeAs[domaintypes.Ed25519Signature],
	"SecretKey":            decodeAs[domaintypes.SecretKey],
	"PublicKey":            decodeAs[domaintypes.PublicKey],
	"Signature":            decodeAs[domaintypes.Signature],
	"RecoverableSignature": decodeAs[domaintypes.RecoverableSignature],
	"Dilithium3Public":     decodeAs[domaintypes.Dilithium3Public],
	"Dilithium3Seed":       decodeAs[domaintypes.Dilithium3Seed],
	"Dilithium3Signature":  decodeAs[domaintypes.Dilithium3Signature],
}

// decodeAs decodes data in the given format into a fresh T and renders it
// with its debug formatter.  The hex format is the hex of the binary
// codec's length-prefixed encoding.
func decodeAs[T any, PT decodable[T]](format string, data []byte) (string, int, error) {
	p := PT(new(T))
	switch format {
	case "json":
		if buffer.IsJSONNull(data) {
			return "", 0, errNoValue
		}
		if err := json.Unmarshal(data, p); err != nil {
			return "", 0, err
		}
	case "yaml":
		if _, ok := any(p).(yaml.Unmarshaler); !ok {
			return "", 0, fmt.Errorf("%T has no YAML form", *p)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return "", 0, err
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 ||
			doc.Content[0].ShortTag() == "!!null" {
			return "", 0, errNoValue
		}
		if err := doc.Content[0].Decode(p); err != nil {
			return "", 0, err
		}
	case "hex":
		raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return "", 0, err
		}
		if err := p.UnmarshalBinary(raw); err != nil {
			return "", 0, err
		}
	default:
		return "", 0, fmt.Errorf("unknown format %q (want json, yaml or hex)", format)
	}
	return p.String(), p.Len(), nil
}

func decodeTypeNames() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// decode <type> [input]: strictly decode a buffer, reading stdin without input.
func decodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode <type> [input]",
		Short: "Decode a key buffer, rejecting input of the wrong length",
		Long: "Decode a key buffer from JSON, YAML or hex and print it.\n\nTypes: " +
			strings.Join(decodeTypeNames(), ", "),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, ok := decoders[args[0]]
			if !ok {
				return fmt.Errorf("unknown type %q", args[0])
			}

			var data []byte
			if len(args) == 2 {
				data = []byte(args[1])
			} else {
				b, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				data = b
			}

			rendered, n, err := decode(format, data)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%d bytes\n", rendered, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "input format: json, yaml or hex")
	return cmd
}
