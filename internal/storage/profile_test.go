package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/RMahshie/hornlab/pkg/models"
)

var sampleProfile = models.ExpansionProfile{
	{Z: 0, Radius: 12.7},
	{Z: 200, Radius: 60},
	{Z: 400, Radius: 150},
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "profiles/abc.json", ProfileKey("abc"))
}

func TestProfileCodec(t *testing.T) {
	data, err := EncodeProfile(sampleProfile)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"z":0,"radius":12.7},{"z":200,"radius":60},{"z":400,"radius":150}]`, string(data))

	decoded, err := DecodeProfile(data)
	require.NoError(t, err)
	assert.Equal(t, sampleProfile, decoded)
}

func TestDecodeProfile_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", `[]`},
		{"single sample", `[{"z":0,"radius":10}]`},
		{"not json", `radius`},
		{"wrong shape", `{"z":0}`},
		{"non-numeric field", `[{"z":"a","radius":1},{"z":1,"radius":1}]`},
		{"missing radius", `[{"z":0},{"z":1,"radius":2}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProfile([]byte(tt.data))
			assert.ErrorIs(t, err, models.ErrMalformedProfile)
		})
	}
}

func TestEncodeProfile_RejectsDegenerate(t *testing.T) {
	_, err := EncodeProfile(models.ExpansionProfile{{Z: 0, Radius: 1}})
	assert.ErrorIs(t, err, models.ErrMalformedProfile)
}

func TestNewProfileStore_UnknownBackend(t *testing.T) {
	_, err := NewProfileStore(context.Background(), Config{Backend: "ftp", Bucket: "b"})
	assert.Error(t, err)
}

func TestStores_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcminio.Run(ctx,
		"minio/minio:RELEASE.2024-10-29T16-01-48Z",
		tcminio.WithUsername("minioadmin"),
		tcminio.WithPassword("minioadmin"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := Config{
		Backend:   "minio",
		Bucket:    "hornlab-test-" + uuid.New().String()[:8],
		Endpoint:  endpoint,
		Region:    "us-east-1",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	}

	// The MinIO store creates the bucket, so it goes first
	minioBackend, err := NewProfileStore(ctx, cfg)
	require.NoError(t, err)

	cfg.Backend = "s3"
	s3Backend, err := NewProfileStore(ctx, cfg)
	require.NoError(t, err)

	for name, store := range map[string]ProfileStore{"minio": minioBackend, "s3": s3Backend} {
		t.Run(name, func(t *testing.T) {
			key := ProfileKey(uuid.New().String())

			require.NoError(t, store.SaveProfile(ctx, key, sampleProfile))

			loaded, err := store.LoadProfile(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, sampleProfile, loaded)

			url, err := store.GenerateDownloadURL(ctx, key)
			require.NoError(t, err)
			assert.Contains(t, url, key)

			require.NoError(t, store.DeleteProfile(ctx, key))

			_, err = store.LoadProfile(ctx, key)
			assert.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}
