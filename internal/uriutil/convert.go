// Package uriutil converts between file system paths and file:// URIs.
package uriutil

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathToURI converts a file system path to a file:// URI. Windows
// drive-letter paths gain a leading slash (file:///C:/...) and UNC
// paths map their server to the URI host. Each segment is
// percent-encoded.
func PathToURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	if runtime.GOOS == "windows" && strings.HasPrefix(abs, `\\`) {
		return "file://" + escapeSegments(filepath.ToSlash(strings.TrimPrefix(abs, `\\`)))
	}

	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	return "file://" + escapeSegments(abs)
}

// URIToPath converts a file:// URI back to a file system path. URIs
// that fail to parse, or that use a scheme other than file, are
// returned with only the scheme prefix stripped.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return strings.TrimPrefix(uri, "file://")
	}

	path := parsed.Path
	if parsed.Host != "" {
		// UNC: file://server/share/dir
		if runtime.GOOS == "windows" {
			return `\\` + parsed.Host + strings.ReplaceAll(path, "/", `\`)
		}
		return parsed.Host + path
	}

	// Windows drive letters arrive as /C:/dir
	if runtime.GOOS == "windows" {
		path = strings.TrimPrefix(path, "/")
		return filepath.FromSlash(path)
	}
	return path
}

func escapeSegments(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}
	return strings.Join(segments, "/")
}
