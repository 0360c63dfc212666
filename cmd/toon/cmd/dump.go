package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toonfmt/toon-go"
	"github.com/toonfmt/toon-go/toontest"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Decode TOON and pretty-print the resulting value tree",
	Long:  "Read TOON from a file (or stdin if omitted), decode it, and print the decoded value tree using the same repr-based dumper the test suite uses for failure diagnostics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		applyConfigDefaults(cfg)
		opts, err := optionsFromFlags()
		if err != nil {
			return err
		}

		data, err := readInput(args)
		if err != nil {
			return err
		}

		v, err := toon.Decode(string(data), opts)
		if err != nil {
			return err
		}
		fmt.Println(toontest.Dump(v))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
