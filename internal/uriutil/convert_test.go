package uriutil

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathToURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "absolute path",
			path: "/home/user/app.tsx",
			want: "file:///home/user/app.tsx",
		},
		{
			name: "path with spaces",
			path: "/home/user/my project/app.tsx",
			want: "file:///home/user/my%20project/app.tsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathToURI(tt.path))
		})
	}
}

func TestPathToURIRelative(t *testing.T) {
	uri := PathToURI("styles.css")

	abs, err := filepath.Abs("styles.css")
	require.NoError(t, err)
	assert.Equal(t, "file://"+filepath.ToSlash(abs), uri)
}

func TestURIToPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "plain file URI",
			uri:  "file:///home/user/app.tsx",
			want: "/home/user/app.tsx",
		},
		{
			name: "percent encoded",
			uri:  "file:///home/user/my%20project/app.tsx",
			want: "/home/user/my project/app.tsx",
		},
		{
			name: "non file scheme",
			uri:  "untitled:Untitled-1",
			want: "untitled:Untitled-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, URIToPath(tt.uri))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	paths := []string{
		"/srv/www/index.html",
		"/home/user/projects/site/tailwind order.txt",
	}
	for _, path := range paths {
		assert.Equal(t, path, URIToPath(PathToURI(path)))
	}
}
