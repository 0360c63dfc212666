package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toonfmt/toon-go"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Canonicalize TOON formatting",
	Long:  "Read TOON from a file (or stdin if omitted), decode it, and re-encode it under the current flags -- a decode/re-encode round trip that canonicalizes quoting, array form, and indentation.",
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

		text, err := toon.Encode(v, opts)
		if err != nil {
			return err
		}
		log.WithField("bytes", len(text)).Debug("formatted")
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
