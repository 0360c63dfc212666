package toontest

import (
	"embed"
	"encoding/json"
	"sync"
)

//go:embed fixtures.json
var fixturesFS embed.FS

// ConformanceCase is one of spec.md section 8's "concrete scenarios":
// a JSON value paired with its canonical TOON encoding under default
// options.
type ConformanceCase struct {
	Name string `json:"name"`
	JSON any    `json:"json"`
	TOON string `json:"toon"`
}

// Fixture holds the loaded conformance table, grounded on the
// teacher's sqltest.Fixture lifecycle (NewFixture/Teardown around a
// resource loaded once per test run). There is no external resource
// to tear down here -- the "resource" is an embedded file read once --
// so Teardown is a no-op kept only to preserve the call shape tests
// written against sqltest.Fixture would expect.
type Fixture struct {
	Cases []ConformanceCase
}

var (
	loadOnce   sync.Once
	loadResult []ConformanceCase
	loadErr    error
)

// NewFixture loads the embedded conformance table. It panics on
// failure, matching the teacher's NewFixture (a malformed embedded
// fixture is a programming error, not a runtime condition tests should
// handle gracefully).
func NewFixture() *Fixture {
	loadOnce.Do(func() {
		data, err := fixturesFS.ReadFile("fixtures.json")
		if err != nil {
			loadErr = err
			return
		}
		loadErr = json.Unmarshal(data, &loadResult)
	})
	if loadErr != nil {
		panic(loadErr)
	}
	return &Fixture{Cases: loadResult}
}

// Teardown is a no-op: see the Fixture doc comment.
func (f *Fixture) Teardown() {}
