package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zhubert/emailwriter/internal/tone"
)

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "List the available reply tones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTones(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tonesCmd)
}

// printTones writes the tone catalog as aligned columns
func printTones(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tLABEL\tDESCRIPTION")
	for _, opt := range tone.Options() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", opt.Value, opt.Label, opt.Description)
	}
	return tw.Flush()
}
