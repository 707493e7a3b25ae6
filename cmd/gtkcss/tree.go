package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gtkcss"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the parsed node tree of a stylesheet",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		inline, _ := cmd.Flags().GetBool("inline")

		log, err := newLogger(getBoolWithFallback("verbose", "verbose", false), false)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		out, err := gtkcss.Tree(args[0], inline, log)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	treeCmd.Flags().Bool("inline", false, "Inline custom properties before printing")
}
