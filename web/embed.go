// Package web bundles the browser UI shipped with the solver binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// StaticFS exposes the embedded static/ tree for mounting under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// embed paths are fixed at compile time, so this branch is dead
		// unless the directory layout changes
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses every embedded template, panicking on malformed markup.
func Templates() *template.Template {
	return template.Must(template.ParseFS(assets, "templates/*.tmpl"))
}
