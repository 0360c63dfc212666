// Package toontest holds test-support helpers shared by the toon
// module's own test suite and the CLI's `toon dump` command, grounded
// on the teacher's sqltest package (querydump.go's repr-based row
// dumper, fixture.go's one-time resource loader).
package toontest

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/toonfmt/toon-go"
)

// Dump pretty-prints a decoded toon.Value tree with alecthomas/repr,
// the same library the teacher's sqltest.DumpRows uses to render
// failing query results for test diagnostics. Values are rendered as
// their ToJSON() projection (plain Go maps/slices/scalars) since
// toon.Value's internal fields are unexported and repr would otherwise
// print only zero-value-looking struct internals.
func Dump(v toon.Value) string {
	return repr.String(toon.ToJSON(v), repr.Indent("  "))
}

// DumpTo returns Dump's output prefixed with a banner naming label,
// matching the teacher's QueryDump separator style.
func DumpTo(label string, v toon.Value) string {
	return fmt.Sprintf("============================\n%s\n============================\n%s", label, Dump(v))
}
