package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/htmlctx/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const want = "<html>\n<head>\n\t<title>hello</title>\n</head>\n<body>\n" +
	"\t<h1 class=\"main-text\">Test</h1>\n" +
	"\t<hr class=\"main-line sep-line\"/>\n" +
	"\t<div class=\"container container-fluid\" id=\"lead\">\n" +
	"\t\t<p>another test</p>\n" +
	"\t\t<img src=\"/icon.png\" data-image=\"responsive\"/>\n" +
	"\t</div>\n</body>\n</html>"

func execute(t *testing.T, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPrintToStdout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlctx.markup")
	defer teardown()
	//
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.html")
	out, _, err := execute(t, "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(b))
}

func TestUnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "example.html")
	_, _, err := execute(t, "-o", path)
	assert.ErrorIs(t, err, markup.ErrOutputNotWritable)
}

func TestTreeAndDot(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "example.dot")
	_, errout, err := execute(t, "--tree", "--dot", dot)
	require.NoError(t, err)
	assert.True(t, strings.Contains(errout, "html (document)"))
	b, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "digraph g {"))
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}
