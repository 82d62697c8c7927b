package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		host     string
		secure   bool
	}{
		{"localhost:9000", "localhost:9000", false},
		{"http://minio:9000", "minio:9000", false},
		{"https://s3.amazonaws.com", "s3.amazonaws.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			host, secure := splitEndpoint(tt.endpoint)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.secure, secure)
		})
	}
}
