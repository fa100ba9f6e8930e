package uriutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURIToPath(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"posix path", "file:///home/user/tokens.json", "/home/user/tokens.json"},
		{"encoded space", "file:///home/user/my%20tokens.json", "/home/user/my tokens.json"},
		{"not a file uri", "/home/user/tokens.json", "/home/user/tokens.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, URIToPath(tt.uri))
		})
	}
}

func TestPathToURIRoundTrip(t *testing.T) {
	paths := []string{
		"/home/user/tokens.json",
		"/home/user/my tokens.json",
	}
	for _, p := range paths {
		assert.Equal(t, p, URIToPath(PathToURI(p)))
	}
}
