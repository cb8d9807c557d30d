package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RMahshie/hornlab/pkg/models"
)

const (
	profileContentType = "application/json"

	// downloadExpiry bounds pre-signed profile download URLs
	downloadExpiry = 24 * time.Hour
)

// ProfileStore persists expansion profiles as JSON objects.
// Loading a missing key returns models.ErrNotFound.
type ProfileStore interface {
	SaveProfile(ctx context.Context, key string, profile models.ExpansionProfile) error
	LoadProfile(ctx context.Context, key string) (models.ExpansionProfile, error)
	GenerateDownloadURL(ctx context.Context, key string) (string, error)
	DeleteProfile(ctx context.Context, key string) error
}

// Config selects and configures a profile store backend
type Config struct {
	Backend   string // "s3" or "minio"
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// NewProfileStore builds the backend named by cfg.Backend
func NewProfileStore(ctx context.Context, cfg Config) (ProfileStore, error) {
	switch cfg.Backend {
	case "", "s3":
		return NewS3Store(ctx, cfg)
	case "minio":
		return NewMinioStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown profile store backend %q", cfg.Backend)
	}
}

// ProfileKey is the object key of a design's profile
func ProfileKey(designID string) string {
	return fmt.Sprintf("profiles/%s.json", designID)
}

// EncodeProfile validates and serializes a profile
func EncodeProfile(profile models.ExpansionProfile) ([]byte, error) {
	if err := profile.Validate(2); err != nil {
		return nil, err
	}
	return json.Marshal(profile)
}

// DecodeProfile parses a serialized profile; empty and single-sample profiles
// are rejected as malformed.
func DecodeProfile(data []byte) (models.ExpansionProfile, error) {
	var profile models.ExpansionProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedProfile, err)
	}
	if err := profile.Validate(2); err != nil {
		return nil, err
	}
	return profile, nil
}
