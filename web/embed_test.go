package web_test

import (
	"io/fs"
	"testing"

	"htmx-greeter/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	for _, name := range []string{"style.css", "htmx.min.js"} {
		data, err := fs.ReadFile(web.Root, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestStatic_PrefixStripped(t *testing.T) {
	data, err := fs.ReadFile(web.Static(), "favicon.svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	_, err = fs.ReadFile(web.Static(), "static/favicon.svg")
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	data, err := fs.ReadFile(web.Templates, "templates/hello.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{ .Name }}")
}
