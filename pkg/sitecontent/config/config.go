// Package config loads server configuration from the environment and
// builds the service components from it. Backend selection happens here,
// once, at process start; nothing outside this package branches on which
// media backend is active.
package config

import (
	"errors"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/secretspot/site-content/pkg/sitecontent"
	"github.com/secretspot/site-content/pkg/sitecontent/media"
	fsmedia "github.com/secretspot/site-content/pkg/sitecontent/media/fs"
	s3media "github.com/secretspot/site-content/pkg/sitecontent/media/s3"
	"github.com/secretspot/site-content/pkg/sitecontent/store"
)

// DefaultAdminToken is the well-known insecure default; any real
// deployment must override ADMIN_TOKEN.
const DefaultAdminToken = "123456"

// Config represents the server configuration
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	AdminToken  string `env:"ADMIN_TOKEN" env-default:"123456"`
	ContentPath string `env:"CONTENT_PATH" env-default:"./data/content.json"`
	PanelPath   string `env:"PANEL_PATH" env-default:"./panel.html"`

	MediaFolderPrefix string `env:"MEDIA_FOLDER_PREFIX" env-default:"secretspot"`

	Uploads UploadsConfig
	S3      S3Config
}

// UploadsConfig configures the local-disk media backend
type UploadsConfig struct {
	Dir       string `env:"UPLOADS_DIR" env-default:"./uploads"`
	URLPrefix string `env:"UPLOADS_URL_PREFIX" env-default:"/uploads"`
}

// S3Config configures the hosted media backend
type S3Config struct {
	Bucket          string `env:"MEDIA_S3_BUCKET"`
	AccessKeyID     string `env:"MEDIA_S3_ACCESS_KEY"`
	SecretAccessKey string `env:"MEDIA_S3_SECRET_KEY"`
	Region          string `env:"MEDIA_S3_REGION" env-default:"us-east-1"`
	Endpoint        string `env:"MEDIA_S3_ENDPOINT"`
	PublicBaseURL   string `env:"MEDIA_S3_PUBLIC_URL"`
	UsePathStyle    bool   `env:"MEDIA_S3_PATH_STYLE" env-default:"false"`
	CreateBucket    bool   `env:"MEDIA_S3_CREATE_BUCKET" env-default:"false"`
}

// Load reads configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.AdminToken == "" {
		return errors.New("admin token is required")
	}
	if c.ContentPath == "" {
		return errors.New("content path is required")
	}
	return nil
}

// UseHostedMedia reports whether the hosted backend is selected: true when
// the full credential triple is present.
func (c *Config) UseHostedMedia() bool {
	return c.S3.Bucket != "" && c.S3.AccessKeyID != "" && c.S3.SecretAccessKey != ""
}

// BuildMediaStore creates the media backend selected by the environment.
func (c *Config) BuildMediaStore() (media.Store, error) {
	if c.UseHostedMedia() {
		return s3media.New(s3media.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.Bucket,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			PublicBaseURL:          c.S3.PublicBaseURL,
			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
	}

	return fsmedia.New(fsmedia.Config{
		BaseDir:   c.Uploads.Dir,
		URLPrefix: c.Uploads.URLPrefix,
	})
}

// BuildService creates a Service instance from the server configuration
func (c *Config) BuildService() (sitecontent.Service, error) {
	documentStore, err := store.New(c.ContentPath)
	if err != nil {
		return nil, err
	}

	mediaStore, err := c.BuildMediaStore()
	if err != nil {
		return nil, err
	}

	return sitecontent.New(
		sitecontent.WithStore(documentStore),
		sitecontent.WithMediaStore(mediaStore),
		sitecontent.WithFolderPrefix(c.MediaFolderPrefix),
	)
}
