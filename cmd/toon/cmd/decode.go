package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toonfmt/toon-go"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Convert TOON to JSON",
	Long:  "Read TOON from a file (or stdin if omitted) and write its JSON equivalent to stdout.",
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

		out, err := json.MarshalIndent(toon.ToJSON(v), "", "  ")
		if err != nil {
			return err
		}
		log.WithField("bytes", len(out)).Debug("decoded")
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
