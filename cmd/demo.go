package cmd

import (
	"os"

	"github.com/lifo-cli/lifo/inline"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/op"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
}

// demoCmd runs every query once over the configured demo values.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run each query once over a sample stack",
	Long: `Push the values of the demo.values config key, then run where, select,
reverse, first, contains, count and max over the resulting stack.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		options := &inline.Options{
			Out:    os.Stdout,
			Values: viper.GetStringSlice(key.DemoValues),
			Ops:    op.Demo(),
			Json:   lo.Must(cmd.Flags().GetBool("json")),
		}

		handleErr(inline.Run(options))
	},
}
