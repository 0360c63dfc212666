package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toonfmt/toon-go"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert JSON to TOON",
	Long:  "Read JSON from a file (or stdin if omitted) and write its canonical TOON encoding to stdout.",
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

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}

		v, err := toon.FromJSON(raw)
		if err != nil {
			return err
		}

		text, err := toon.Encode(v, opts)
		if err != nil {
			return err
		}
		log.WithField("bytes", len(text)).Debug("encoded")
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
