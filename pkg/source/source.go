package source

import (
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
)

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile   Kind = "file"
	KindFS     Kind = "fs"
	KindURL    Kind = "url"
	KindReader Kind = "reader"
)

// Source identifies a document location.
type Source interface {
	Kind() Kind
	Location() string
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() Kind       { return KindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() Kind       { return KindFS }

// FromFS returns a Source identifying a resource inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() Kind       { return KindURL }

// FromURL validates raw as an absolute http(s) URL and returns a Source.
func FromURL(raw string) (Source, error) {
	if raw == "" {
		return nil, fmt.Errorf("source: empty URL")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("source: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("source: unsupported URL scheme %q", u.Scheme)
	}
	return urlSource{raw: raw}, nil
}

// ReaderSource streams a document from an io.Reader such as stdin.
type ReaderSource struct {
	Name   string
	Reader io.Reader
}

func (s ReaderSource) Location() string { return s.Name }
func (s ReaderSource) Kind() Kind       { return KindReader }

// FromReader returns a Source reading from r. name is used in messages.
func FromReader(name string, r io.Reader) Source {
	return ReaderSource{Name: name, Reader: r}
}

// Detect maps a command-line argument to a Source: "-" reads stdin, http(s)
// URLs are fetched, anything else is a file path.
func Detect(arg string, stdin io.Reader) (Source, error) {
	switch {
	case arg == "" || arg == "-":
		return FromReader("stdin", stdin), nil
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		return FromURL(arg)
	default:
		return FromFile(arg), nil
	}
}
