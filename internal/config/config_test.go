package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"github.com/spachava753/vcardbox/card"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Variant, "default")
	be.Equal(t, cfg.Version, "2.1")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Variant = string(card.VariantJapan)
	cfg.Database = "/tmp/test.db"
	cfg.Account = AccountConfig{Name: "user@example.com", Type: "imap"}
	be.Err(t, cfg.Save(path), nil)

	loaded, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, loaded.Variant, "japan")
	be.Equal(t, loaded.Database, "/tmp/test.db")
	be.Equal(t, loaded.Account.Name, "user@example.com")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	be.Err(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o644), nil)
	_, err := Load(path)
	be.True(t, err != nil)
}

func TestCardConfig(t *testing.T) {
	cfg := Default()
	cc := cfg.CardConfig()
	be.Equal(t, cc.Variant, card.VariantDefault)
	be.Equal(t, cc.Version, card.Version21)
	be.True(t, cc.Account == nil)

	cfg.Account = AccountConfig{Name: "user@example.com"}
	cc = cfg.CardConfig()
	be.Equal(t, cc.Account.Name, "user@example.com")
}
