package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	argparsegen "github.com/vsego/argparse-gen"
	"github.com/vsego/argparse-gen/display"
)

var (
	flagParamRegex  string
	flagIndent      string
	flagSkipPrivate bool
	flagCallArgs    bool
	flagMaxWidth    int
	flagOutput      string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "argparse-gen <schema> <object>",
	Short: "Generate argparse CLI code for a described callable",
	Long: `argparse-gen reads a signature schema (a YAML description of a module's
callables, their parameters and docstrings) and prints a ready-to-run
Python script whose argparse parser invokes the named object.

The object name may contain dots to reach nested attributes (like
"Greeter.run").

Examples:
  argparse-gen module.yaml process
  argparse-gen module.yaml Greeter --call-args
  argparse-gen ./schemas process --indent '    ' -o cli.py`,
	Args:          cobra.ExactArgs(2),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagParamRegex, "param-regex", "p", argparsegen.DefaultParamRegex,
		"Regular expression recognising docstring parameter directives")
	rootCmd.Flags().StringVarP(&flagIndent, "indent", "i", "",
		"Additional indentation for the generated code")
	rootCmd.Flags().BoolVarP(&flagSkipPrivate, "skip-private", "s", true,
		"Skip parameters whose name starts with an underscore")
	rootCmd.Flags().BoolVarP(&flagCallArgs, "call-args", "c", false,
		"Delegate the final call to call_args_attr instead of explicit keywords")
	rootCmd.Flags().IntVar(&flagMaxWidth, "max-width", display.DefaultMaxWidth,
		"Maximum width for generated attribute lines")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"Write the generated script to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
	schemaPath, objName := args[0], args[1]
	log.Debug("loading schema", "path", schemaPath, "object", objName)

	gen, err := argparsegen.FromFile(schemaPath, objName,
		argparsegen.WithParamRegex(flagParamRegex),
		argparsegen.WithIndent(flagIndent),
		argparsegen.WithSkipPrivate(flagSkipPrivate),
		argparsegen.WithUseCallArgs(flagCallArgs),
		argparsegen.WithMaxWidth(flagMaxWidth),
	)
	if err != nil {
		return err
	}
	code, err := gen.Code()
	if err != nil {
		return err
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(code+"\n"), 0o644); err != nil {
			return err
		}
		log.Info("wrote generated script", "path", flagOutput)
		return nil
	}
	fmt.Println(code)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
