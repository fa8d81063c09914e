// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webui serves the corpus directory over plain local HTTP for
// human browsing. It has no data-shaping responsibility; the corpus file
// is served as-is alongside whatever front-end assets sit next to it.
package webui

import (
	"fmt"
	"io"
	"net/http"
)

// Handler returns a file-serving handler rooted at dir.
func Handler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}

// Serve blocks serving dir on addr until the listener fails.
func Serve(addr, dir string, w io.Writer) error {
	fmt.Fprintf(w, "serving %s on http://%s\n", dir, addr)
	return http.ListenAndServe(addr, Handler(dir))
}
