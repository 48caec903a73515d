package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretspot/site-content/pkg/sitecontent/config"
	fsmedia "github.com/secretspot/site-content/pkg/sitecontent/media/fs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, config.DefaultAdminToken, cfg.AdminToken)
	assert.Equal(t, "secretspot", cfg.MediaFolderPrefix)
	assert.Equal(t, "/uploads", cfg.Uploads.URLPrefix)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_TOKEN", "sekrit")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sekrit", cfg.AdminToken)
}

func TestUseHostedMediaRequiresFullTriple(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		access string
		secret string
		hosted bool
	}{
		{"all present", "bucket", "key", "secret", true},
		{"missing bucket", "", "key", "secret", false},
		{"missing access key", "bucket", "", "secret", false},
		{"missing secret", "bucket", "key", "", false},
		{"none present", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MEDIA_S3_BUCKET", tt.bucket)
			t.Setenv("MEDIA_S3_ACCESS_KEY", tt.access)
			t.Setenv("MEDIA_S3_SECRET_KEY", tt.secret)

			cfg, err := config.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.hosted, cfg.UseHostedMedia())
		})
	}
}

func TestS3CreateBucketOption(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.S3.CreateBucket)

	t.Setenv("MEDIA_S3_CREATE_BUCKET", "true")

	cfg, err = config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.S3.CreateBucket)
}

func TestBuildMediaStoreLocalFallback(t *testing.T) {
	t.Setenv("UPLOADS_DIR", filepath.Join(t.TempDir(), "uploads"))

	cfg, err := config.Load()
	require.NoError(t, err)
	require.False(t, cfg.UseHostedMedia())

	mediaStore, err := cfg.BuildMediaStore()
	require.NoError(t, err)
	assert.IsType(t, &fsmedia.Backend{}, mediaStore)
}

func TestValidate(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "x")
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.AdminToken = ""
	assert.Error(t, cfg.Validate())

	cfg.AdminToken = "x"
	cfg.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestBuildService(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONTENT_PATH", filepath.Join(dir, "content.json"))
	t.Setenv("UPLOADS_DIR", filepath.Join(dir, "uploads"))

	cfg, err := config.Load()
	require.NoError(t, err)

	svc, err := cfg.BuildService()
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
