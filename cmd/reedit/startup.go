package main

import (
	"path/filepath"

	"github.com/iw2rmb/reedit/storage"
)

// startup is where the session begins: the browser directory and the file
// to open, if any.
type startup struct {
	Dir  string
	Path string
}

// resolveStartup applies the startup argument contract:
//
//	""  or "."       untitled document, browser at cwd
//	existing file    open it, browser at its directory
//	existing dir     untitled document, browser there
//	missing path     new file bound to path, browser at its parent if present
func resolveStartup(store storage.Storage, cwd, arg string) (startup, error) {
	if arg == "" || arg == "." {
		return startup{Dir: cwd}, nil
	}

	p := arg
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	p = filepath.Clean(p)

	e, err := store.Stat(p)
	switch {
	case err == nil && e.IsDir:
		return startup{Dir: p}, nil
	case err == nil:
		return startup{Dir: filepath.Dir(p), Path: p}, nil
	case storage.IsNotFound(err):
		dir := filepath.Dir(p)
		if parent, perr := store.Stat(dir); perr != nil || !parent.IsDir {
			dir = cwd
		}
		return startup{Dir: dir, Path: p}, nil
	default:
		return startup{}, err
	}
}
