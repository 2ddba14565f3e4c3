package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_Set covers the accepted and rejected host:port inputs.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "localhost with port", input: "localhost:8000", want: "localhost:8000"},
		{name: "ip with port", input: "127.0.0.1:8000", want: "127.0.0.1:8000"},
		{name: "empty host", input: ":8000", want: ":8000"},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

// TestNetAddress_String_Zero verifies the zero value renders as empty so the
// merge step can treat it as "unset".
func TestNetAddress_String_Zero(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
