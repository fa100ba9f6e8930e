package uriutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathToURI converts a file system path to a file:// URI.
// Path segments are percent-encoded so paths with spaces or unicode
// round-trip through URIToPath.
func PathToURI(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	absPath = filepath.ToSlash(absPath)
	if !strings.HasPrefix(absPath, "/") {
		// Windows drive paths: C:/proj -> /C:/proj
		absPath = "/" + absPath
	}

	segments := strings.Split(absPath, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}

	return "file://" + strings.Join(segments, "/")
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uriFallback(uri)
	}

	path := parsed.Path
	decodedPath, err := url.PathUnescape(path)
	if err != nil {
		decodedPath = path
	}

	// Windows URIs carry a leading slash before the drive letter: /C:/proj
	if len(decodedPath) >= 3 && decodedPath[0] == '/' && decodedPath[2] == ':' {
		decodedPath = decodedPath[1:]
	}

	return filepath.FromSlash(decodedPath)
}

// uriFallback provides a simple fallback for invalid URIs
func uriFallback(uri string) string {
	path := uri
	if strings.HasPrefix(path, "file:///") {
		path = path[7:] // keep one slash
	} else if strings.HasPrefix(path, "file://") {
		path = path[7:]
	}

	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}
