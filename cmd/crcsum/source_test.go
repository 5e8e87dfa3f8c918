package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in   string
		want location
	}{
		{"file.bin", location{key: "file.bin"}},
		{"/abs/path/file.bin", location{key: "/abs/path/file.bin"}},
		{"s3://bucket/key", location{scheme: "s3", bucket: "bucket", key: "key"}},
		{"S3://bucket/dir/key.gz", location{scheme: "s3", bucket: "bucket", key: "dir/key.gz"}},
		{"minio://b/k", location{scheme: "minio", bucket: "b", key: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLocation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"s3://bucket", "s3://bucket/", "s3:///key", "s3://%zz/key"} {
		_, err := parseLocation(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseHex(t *testing.T) {
	v, err := parseHex("x", "0xCBF43926")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCBF43926), v)

	v, err = parseHex("x", " ffff ")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF), v)

	_, err = parseHex("x", "")
	assert.Error(t, err)

	_, err = parseHex("x", "0x100000000")
	assert.Error(t, err)
}
