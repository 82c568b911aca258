package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keybuf/internal/gen"
)

func main() {
	if err := newRootCmd(os.Args[1:]).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd returns the bufgen command for argv, which is also recorded in
// the generated header.
func newRootCmd(argv []string) *cobra.Command {
	var (
		types   string
		debug   string
		pkg     string
		output  string
		codec   bool
		json    bool
		yamlOut bool
	)

	cmd := &cobra.Command{
		Use:   "bufgen",
		Short: "Generate fixed-size buffer methods for named byte arrays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := gen.ParseTypes(types)
			if err != nil {
				return err
			}
			mode, err := gen.ParseDebugMode(debug)
			if err != nil {
				return err
			}
			if pkg == "" {
				pkg = os.Getenv("GOPACKAGE")
			}
			if pkg == "" {
				return fmt.Errorf("package name required (--package or $GOPACKAGE)")
			}

			src, err := gen.Generate(gen.Options{
				Package: pkg,
				Types:   specs,
				Debug:   mode,
				Codec:   codec,
				JSON:    json,
				YAML:    yamlOut,
				Args:    argv,
			})
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.ToLower(specs[0].Name) + "_buf.go"
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	f := cmd.Flags()
	f.StringVar(&types, "type", "", "comma separated Name:Len pairs")
	f.StringVar(&debug, "debug", string(gen.DebugPretty), "debug formatter: pretty, raw or none")
	f.StringVar(&pkg, "package", "", "package name (default $GOPACKAGE)")
	f.StringVar(&output, "output", "", "output file (default <type>_buf.go)")
	f.BoolVar(&codec, "codec", false, "emit the length-prefixed binary codec")
	f.BoolVar(&json, "json", false, "emit strict JSON sequence (de)serialization")
	f.BoolVar(&yamlOut, "yaml", false, "emit strict YAML sequence (de)serialization")
	_ = cmd.MarkFlagRequired("type")
	cmd.SetArgs(argv)
	return cmd
}
