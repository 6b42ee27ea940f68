package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/resourceid"
)

func TestService_Load(t *testing.T) {
	t.Setenv("RESOURCEID_INSTANCE_MAX_LENGTH", "40")
	testCases := []struct {
		name      string
		file      string
		expect    *resourceid.Config
		expectErr bool
	}{
		{
			name: "yaml with env expansion",
			file: "spanner.yaml",
			expect: &resourceid.Config{
				Database: resourceid.DatabaseConfig{MaxLength: 30},
				Instance: resourceid.InstanceConfig{MaxLength: 40},
				Registry: resourceid.RegistryConfig{MaxAttempts: 5},
			},
		},
		{
			name: "json",
			file: "unlimited.json",
			expect: &resourceid.Config{
				Registry: resourceid.RegistryConfig{MaxAttempts: 3},
			},
		},
		{name: "invalid limits", file: "invalid.yaml", expectErr: true},
		{name: "missing file", file: "missing.yaml", expectErr: true},
	}

	srv := New(afs.New())
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			URL, err := filepath.Abs(filepath.Join("testdata", tc.file))
			assert.NoError(t, err)
			actual, err := srv.Load(ctx, URL)
			if tc.expectErr {
				assert.Error(t, err)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestService_Load_DefaultExtension(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte("registry:\n  maxAttempts: 2\n"), 0o644)
	assert.NoError(t, err)

	cfg, err := New(nil).Load(context.Background(), filepath.Join(dir, "rules"))
	assert.NoError(t, err)
	expect := resourceid.DefaultConfig()
	expect.Registry.MaxAttempts = 2
	assert.EqualValues(t, expect, cfg)

	srv, err := resourceid.NewFromConfig(cfg)
	assert.NoError(t, err)
	id, err := srv.DatabaseID("Loaded.Config")
	assert.NoError(t, err)
	assert.Equal(t, "loaded_config", id)
}

func TestDecode(t *testing.T) {
	_, err := Decode("broken.yaml", []byte("database: [1, 2"))
	assert.Error(t, err)
	_, err = Decode("broken.json", []byte("{"))
	assert.Error(t, err)

	cfg, err := Decode("partial.json", []byte(`{"database":{"maxLength":12}}`))
	assert.NoError(t, err)
	assert.Equal(t, 12, cfg.Database.MaxLength)
	assert.Equal(t, 64, cfg.Instance.MaxLength)
}
