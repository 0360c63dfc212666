package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/smasher164/xid"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Flag JSON object keys that will need quoting once encoded as TOON",
	Long: "Read JSON from a file (or stdin if omitted) and report object keys that are Unicode " +
		"identifier-like (valid XID_Start/XID_Continue, per UAX #31) but will still need quoting " +
		"in TOON, since spec.md's unquoted key grammar is ASCII-only ([A-Za-z_][A-Za-z0-9_.]*). " +
		"This is a compactness hint, not a core-semantics warning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}

		hints := lintKeys("", raw)
		if len(hints) == 0 {
			fmt.Println("no keys need quoting hints")
			return nil
		}
		for _, h := range hints {
			fmt.Println(h)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// lintKeys walks a decoded JSON tree and collects a hint for every
// object key that is a valid Unicode identifier (so a human reading it
// would expect it to be unquoted) but isn't pure ASCII, which means
// TOON's bare-key grammar (spec.md section 4.1) still forces it to be
// quoted.
func lintKeys(path string, v any) []string {
	var hints []string
	switch t := v.(type) {
	case map[string]any:
		for k, el := range t {
			keyPath := path + "." + k
			if isUnicodeIdentifierButNotASCII(k) {
				hints = append(hints, fmt.Sprintf("%s: key %q will be quoted in TOON (non-ASCII identifier)", keyPath, k))
			}
			hints = append(hints, lintKeys(keyPath, el)...)
		}
	case []any:
		for i, el := range t {
			hints = append(hints, lintKeys(fmt.Sprintf("%s[%d]", path, i), el)...)
		}
	}
	return hints
}

func isUnicodeIdentifierButNotASCII(key string) bool {
	if key == "" {
		return false
	}
	asciiOnly := true
	first := true
	for _, r := range key {
		if r > 127 {
			asciiOnly = false
		}
		if first {
			if !xid.Start(r) {
				return false
			}
			first = false
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return !asciiOnly
}
