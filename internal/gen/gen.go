package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
)

// DebugMode selects the String method emitted for a buffer type.
type DebugMode string

const (
	// DebugPretty renders TypeName(hex).
	DebugPretty DebugMode = "pretty"
	// DebugRaw renders bare hex.
	DebugRaw DebugMode = "raw"
	// DebugNone emits no formatter.
	DebugNone DebugMode = "none"
)

// ParseDebugMode validates s as a DebugMode.
func ParseDebugMode(s string) (DebugMode, error) {
	switch m := DebugMode(s); m {
	case DebugPretty, DebugRaw, DebugNone:
		return m, nil
	}
	return "", fmt.Errorf("unknown debug mode %q (want pretty, raw or none)", s)
}

// TypeSpec names one buffer type and its fixed length.
type TypeSpec struct {
	Name string
	Len  int
}

// Options controls what Generate emits.
type Options struct {
	Package string
	Types   []TypeSpec
	Debug   DebugMode
	Codec   bool
	JSON    bool
	YAML    bool

	// Args is recorded in the generated header.
	Args []string
}

// ParseTypes parses a comma separated list of Name:Len pairs such as
// "PublicKey:33,Signature:64".
func ParseTypes(s string) ([]TypeSpec, error) {
	var specs []TypeSpec
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, length, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("type %q: want Name:Len", part)
		}
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return nil, fmt.Errorf("type %q: not an exported identifier", name)
		}
		n, err := strconv.Atoi(length)
		if err != nil {
			return nil, fmt.Errorf("type %q: bad length %q", name, length)
		}
		if n <= 0 {
			return nil, fmt.Errorf("type %q: length must be positive, got %d", name, n)
		}
		if seen[name] {
			return nil, fmt.Errorf("type %q listed twice", name)
		}
		seen[name] = true
		specs = append(specs, TypeSpec{Name: name, Len: n})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("no types given")
	}
	return specs, nil
}

// Generate returns the gofmt-ed source for opts.
func Generate(opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name required")
	}
	if len(opts.Types) == 0 {
		return nil, fmt.Errorf("no types given")
	}
	if opts.Debug == "" {
		opts.Debug = DebugPretty
	}
	if _, err := ParseDebugMode(string(opts.Debug)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, opts); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// Pretty reports whether opts asks for the pretty formatter.
func (o Options) Pretty() bool { return o.Debug == DebugPretty }

// Raw reports whether opts asks for the raw formatter.
func (o Options) Raw() bool { return o.Debug == DebugRaw }

// Command returns the bufgen invocation recorded in the file header.
func (o Options) Command() string {
	return strings.TrimSpace("bufgen " + strings.Join(o.Args, " "))
}
