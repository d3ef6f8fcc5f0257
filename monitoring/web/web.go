// Package web includes the static web pages for the monitoring tool.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticAssets embed.FS

// GetAssets returns the static assets
func GetAssets() http.FileSystem {
	subFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic(err)
	}

	return http.FS(subFS)
}
