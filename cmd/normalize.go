package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucidsearch/luq"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [deterministic text]",
	Short: "Rewrite deterministic technical text into narrative form",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(luq.Normalize(strings.Join(args, " ")))
	},
}
