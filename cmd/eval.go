package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/inline"
	"github.com/lifo-cli/lifo/op"
	"github.com/lifo-cli/lifo/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringArrayP("op", "o", []string{}, "Operation to apply, may be repeated (e.g. -o 'where x > 3')")
	evalCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	evalCmd.Flags().String("output", "", "Specify a file path to write the command output")

	lo.Must0(evalCmd.RegisterFlagCompletionFunc("op", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if !strings.Contains(toComplete, " ") {
			return lo.Filter(op.Kinds(), func(k string, _ int) bool {
				return strings.HasPrefix(k, toComplete)
			}), cobra.ShellCompDirectiveNoFileComp
		}
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// evalCmd applies operations to a stack built from its arguments, without the TUI.
var evalCmd = &cobra.Command{
	Use:   "eval [values...]",
	Short: "Apply operations to a stack in non-interactive mode",
	Long: `Push the given values in order, then apply each --op in order and print the results.

Values are read as booleans, numbers or strings.
Operations:
  push <value>, pop, peek, empty, len, clear
  reverse
  where <predicate>, first <predicate>, contains <predicate>, count <predicate>
  select <selector>
  max [comparator]

Predicates and selectors are Lua expressions over x.
Comparators are Lua expressions over a and b evaluating to -1, 0 or 1.`,
	Example: `  lifo eval 1 5 3 8 -o 'where x > 3' -o 'max'
  lifo eval 1 5 3 8 -o 'select x * 2' --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ops, err := op.ParseAll(lo.Must(cmd.Flags().GetStringArray("op")))
		handleErr(err)

		options := &inline.Options{
			Out:    os.Stdout,
			Values: args,
			Ops:    ops,
			Json:   lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(runEval(options, lo.Must(cmd.Flags().GetString("output"))))
	},
}

// runEval runs options, writing to the file at output when it is set.
// The file is closed before any error is returned.
func runEval(options *inline.Options, output string) error {
	if output == "" {
		return inline.Run(options)
	}

	file, err := filesystem.API().Create(output)
	if err != nil {
		return err
	}

	options.Out = file
	runErr := inline.Run(options)
	return errors.Join(runErr, file.Close())
}

func init() {
	evalCmd.AddCommand(evalSchemaCmd)
}

// evalSchemaCmd prints the JSON Schema of the eval --json document.
var evalSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured eval output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
