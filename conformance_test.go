package toon_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toonfmt/toon-go"
	"github.com/toonfmt/toon-go/toontest"
)

// normalizeJSON round-trips v through encoding/json so every number,
// regardless of whether it started life as int64, uint64, or float64,
// ends up float64 -- the same representation the embedded fixture's
// "json" field already carries after toontest loads it.
func normalizeJSON(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestConformanceEncodeMatchesFixtureText(t *testing.T) {
	fx := toontest.NewFixture()
	for _, c := range fx.Cases {
		t.Run(c.Name, func(t *testing.T) {
			v, err := toon.FromJSON(normalizeJSON(t, c.JSON))
			require.NoError(t, err)
			s, err := toon.Encode(v, toon.DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, c.TOON, s)
		})
	}
}

func TestConformanceDecodeMatchesFixtureJSON(t *testing.T) {
	fx := toontest.NewFixture()
	for _, c := range fx.Cases {
		t.Run(c.Name, func(t *testing.T) {
			v, err := toon.Decode(c.TOON, toon.DefaultOptions())
			require.NoError(t, err)
			got := normalizeJSON(t, toon.ToJSON(v))
			want := normalizeJSON(t, c.JSON)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("decode(%q) =\n%s\nwant %#v", c.TOON, toontest.Dump(v), want)
			}
		})
	}
}
