package store

import (
	_ "embed"
	"encoding/json"
)

//go:embed transactions.json
var fixtureJSON []byte

// FixtureRecords returns the baked-in transaction fixture. The file is part
// of the binary; a decode failure is a build defect, not a runtime state.
func FixtureRecords() ([]RawTransaction, error) {
	var raw []RawTransaction
	if err := json.Unmarshal(fixtureJSON, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
