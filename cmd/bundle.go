package cmd

import (
	"htmx-greeter/core/assets"
	"htmx-greeter/feature/webassets"
	"htmx-greeter/web"
)

// BundleEntry describes one embedded asset as it is served.
type BundleEntry struct {
	Route       string `json:"route" yaml:"route"`
	Size        int    `json:"size" yaml:"size"`
	ContentType string `json:"content_type" yaml:"content_type"`
}

// fixedContentTypes are the content types of the fixed routes, which override
// the inferred MIME type.
var fixedContentTypes = map[string]string{
	webassets.StylesheetKey: webassets.ContentTypeStylesheet,
	webassets.ScriptKey:     webassets.ContentTypeScript,
}

// loadBundle returns every served asset keyed by its URL path without the
// leading slash: "style.css", "htmx.min.js", "static/favicon.svg".
func loadBundle() (*assets.Store, error) {
	root, err := assets.New(web.Root)
	if err != nil {
		return nil, err
	}
	static, err := assets.New(web.Static())
	if err != nil {
		return nil, err
	}

	files := make(map[string][]byte, root.Len()+static.Len())
	for _, p := range root.Paths() {
		a, _ := root.Lookup(p)
		files[p] = a.Data
	}
	for _, p := range static.Paths() {
		a, _ := static.Lookup(p)
		files["static/"+p] = a.Data
	}
	return assets.FromFiles(files), nil
}

// bundleEntries lists the bundle in route order.
func bundleEntries(store *assets.Store) []BundleEntry {
	entries := make([]BundleEntry, 0, store.Len())
	for _, p := range store.Paths() {
		a, _ := store.Lookup(p)
		ct := a.MIME
		if fixed, ok := fixedContentTypes[p]; ok {
			ct = fixed
		}
		entries = append(entries, BundleEntry{
			Route:       "/" + p,
			Size:        len(a.Data),
			ContentType: ct,
		})
	}
	return entries
}
