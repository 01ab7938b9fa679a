// Package cli wires the command line surface of the generator.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katyo/c4dart"
	"github.com/katyo/c4dart/logger"
	"github.com/katyo/c4dart/parser"
	"github.com/katyo/c4dart/translator"
	"github.com/katyo/c4dart/version"
)

var (
	outputPath   string
	className    string
	includePaths []string
	sysIncludes  bool
	showVersion  bool
)

// RootCmd is the one and only command; the tool does a single generation
// pass per invocation.
var RootCmd = &cobra.Command{
	Use:          "c4dart [flags] <header.h>",
	Short:        "Generate Dart FFI bindings from a C header",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

func init() {
	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	RootCmd.Flags().StringVarP(&className, "class", "c", "", "library wrapper class name (default: derived from file name)")
	RootCmd.Flags().StringArrayVarP(&includePaths, "include", "I", nil, "extra include search directory (repeatable)")
	RootCmd.Flags().BoolVar(&sysIncludes, "isystem", true, "detect system include directories via the clang driver")
	RootCmd.Flags().StringP("match", "m", ".*", "declaration name match pattern")
	RootCmd.Flags().StringP("replace", "r", "$0", "declaration name replace template")
	RootCmd.Flags().StringP("log", "l", "off", "log level (off, debug, info, warn, error)")
	RootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")

	viper.SetEnvPrefix("c4dart")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	for _, name := range []string{"match", "replace", "log"} {
		if err := viper.BindPFlag(name, RootCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	if err := logger.Initialize(viper.GetString("log")); err != nil {
		return err
	}
	defer logger.Cleanup()

	if len(args) < 1 {
		return errors.New("missing input header")
	}
	input := args[0]

	match, err := regexp.Compile(viper.GetString("match"))
	if err != nil {
		return errors.Wrap(err, "invalid match pattern")
	}

	class := className
	if class == "" {
		class = defaultClassName(input, outputPath)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrapf(err, "unable to create output file `%s`", outputPath)
		}
		defer file.Close()
		out = file
	}

	return c4dart.Translate(
		translator.Options{
			Match:     match,
			Replace:   viper.GetString("replace"),
			ClassName: class,
		},
		parser.Config{
			IncludePaths:         includePaths,
			DetectSystemIncludes: sysIncludes,
		},
		input, out)
}

// defaultClassName derives the wrapper class name from the input header
// stem, falling back to the output file stem when the input has none.
func defaultClassName(input, output string) string {
	if stem := fileStem(input); stem != "" {
		return stem
	}
	return fileStem(output)
}

// fileStem is the base name without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
