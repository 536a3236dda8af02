package config

import "path/filepath"

// Path is a filesystem path. The manifest hands us bare strings; the model
// keeps paths as their own type so path-valued and string-valued fields
// cannot be mixed up downstream.
type Path string

func (p Path) String() string {
	return string(p)
}

// Dir returns all but the last element of p, like filepath.Dir.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Join appends elements to p, separated by the platform separator.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}
