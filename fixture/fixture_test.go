package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safehaven-app/safehaven-api/schema"
)

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "users.json", `[
		{"id":"v1","email":"v1@example.com","password":"pw","name":"Maria","phone":"1","role":"victim","verified":true}
	]`)
	writeSeed(t, dir, "requests.json", `[
		{"id":"r1","victimId":"v1","type":"medical","title":"t","description":"d","urgency":"high","status":"pending","createdAt":"2025-01-10T09:30:00Z"}
	]`)
	writeSeed(t, dir, "donations.json", `[]`)

	data, err := Load(dir)
	assert.NoError(t, err)

	assert.Len(t, data.Users, 1)
	assert.Equal(t, schema.ROLE_VICTIM, data.Users[0].Role)

	assert.Len(t, data.Requests, 1)
	assert.Equal(t, "v1", data.Requests[0].VictimID)
	assert.Equal(t, 2025, data.Requests[0].CreatedAt.Year())

	assert.Empty(t, data.Donations)
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "users.json", `[]`)

	data, err := Load(dir)
	assert.Nil(t, data)
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "users.json", `[{`)

	data, err := Load(dir)
	assert.Nil(t, data)
	assert.Error(t, err)
}
