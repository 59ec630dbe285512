// Package fixture loads the bundled seed collections the record store
// starts from. The seed is three flat JSON arrays matching the schema
// shapes; there is no other data source.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safehaven-app/safehaven-api/schema"
)

// Data holds the pre-loaded collections. Consultations have no seed
// file; that collection always starts empty.
type Data struct {
	Users     []schema.User
	Requests  []schema.HelpRequest
	Donations []schema.Donation
}

// Load reads users.json, requests.json and donations.json from dir.
func Load(dir string) (*Data, error) {
	var data Data

	if err := loadFile(filepath.Join(dir, "users.json"), &data.Users); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, "requests.json"), &data.Requests); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, "donations.json"), &data.Donations); err != nil {
		return nil, err
	}

	return &data, nil
}

func loadFile(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return nil
}
