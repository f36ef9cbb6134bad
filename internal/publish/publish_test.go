package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	failures int
	calls    int
	bucket   string
	key      string
	body     []byte
	ctype    string
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("503 slow down")
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.bucket, f.key, f.body, f.ctype = *in.Bucket, *in.Key, body, *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func newTestPublisher(client PutObjectAPI, cfg Config) *Publisher {
	p := NewWithClient(client, cfg)
	p.backoff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return p
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datapackage.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "opsd_household_data"}`), 0o644))
	return path
}

func TestPublish(t *testing.T) {
	file := writeManifest(t)
	client := &fakeS3{failures: 2}
	p := newTestPublisher(client, Config{Bucket: "opsd", Prefix: "/household/2020-04-15/", Region: "eu-central-1"})

	url, err := p.Publish(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, "opsd", client.bucket)
	assert.Equal(t, "household/2020-04-15/datapackage.json", client.key)
	assert.Equal(t, "application/json", client.ctype)
	assert.JSONEq(t, `{"name": "opsd_household_data"}`, string(client.body))
	assert.Equal(t, "https://opsd.s3.eu-central-1.amazonaws.com/household/2020-04-15/datapackage.json", url)
}

func TestPublish_GivesUp(t *testing.T) {
	client := &fakeS3{failures: 100}
	p := newTestPublisher(client, Config{Bucket: "opsd"})

	_, err := p.Publish(context.Background(), writeManifest(t))

	require.Error(t, err)
	assert.Equal(t, maxAttempts, client.calls)
	assert.Contains(t, err.Error(), "after 5 attempts")
	assert.Contains(t, err.Error(), "503 slow down")
}

func TestPublish_MissingFile(t *testing.T) {
	client := &fakeS3{}
	p := newTestPublisher(client, Config{Bucket: "opsd"})

	_, err := p.Publish(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestPublish_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &fakeS3{failures: 100}
	p := newTestPublisher(client, Config{Bucket: "opsd"})

	_, err := p.Publish(ctx, writeManifest(t))

	require.Error(t, err)
	assert.Less(t, client.calls, maxAttempts)
}

func TestKeyAndURL(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectedKey string
		expectedURL string
	}{
		{
			name:        "no prefix",
			cfg:         Config{Bucket: "opsd", Region: "us-east-1"},
			expectedKey: "datapackage.json",
			expectedURL: "https://opsd.s3.us-east-1.amazonaws.com/datapackage.json",
		},
		{
			name:        "custom endpoint",
			cfg:         Config{Bucket: "opsd", Prefix: "v1", Endpoint: "http://localhost:9000/"},
			expectedKey: "v1/datapackage.json",
			expectedURL: "http://localhost:9000/opsd/v1/datapackage.json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewWithClient(&fakeS3{}, tc.cfg)
			key := p.Key("/out/datapackage.json")
			assert.Equal(t, tc.expectedKey, key)
			assert.Equal(t, tc.expectedURL, p.URL(key))
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Bucket: "opsd"}.Enabled())
}
