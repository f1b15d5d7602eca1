package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/source"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("# "+r+"\n"), 0o600))
	}
}

func names(srcs []source.Source) []string {
	out := make([]string, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, s.Name)
	}
	return out
}

func TestWalk_FindsMarkdownRecursively(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"b.md",
		"a.md",
		"nested/deep/c.MD",
		"notes.txt",
		".hidden.md",
		".git/d.md",
		"nested/.cache/e.md",
	)

	files, err := Walk(root, Options{Extensions: []string{".md"}})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "b.md"),
		filepath.Join(root, "nested/deep/c.MD"),
	}, files)
}

func TestWalk_ExtensionsAndExclude(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.md", "b.markdown", "CHANGELOG.md", "_draft.md", "sub/_partial.markdown")

	files, err := Walk(root, Options{
		Extensions: []string{".md", ".markdown"},
		Exclude:    []string{"CHANGELOG.md", "_*"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "b.markdown"),
	}, files)
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), Options{Extensions: []string{".md"}})
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}

func TestResolve_NoPathsMeansStdin(t *testing.T) {
	srcs, err := Resolve(nil, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{source.StdinName}, names(srcs))
}

func TestResolve_SingleDirectoryIsWalked(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.md", "sub/b.md", "c.txt")

	srcs, err := Resolve([]string{root}, Options{Extensions: []string{".md"}})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "sub/b.md"),
	}, names(srcs))
}

func TestResolve_FilesKeepArgumentOrderAndAnyExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "z.md", "a.txt")

	args := []string{filepath.Join(root, "z.md"), filepath.Join(root, "a.txt")}
	srcs, err := Resolve(args, Options{Extensions: []string{".md"}})
	require.NoError(t, err)
	require.Equal(t, args, names(srcs))
}

func TestResolve_DashIsStdin(t *testing.T) {
	srcs, err := Resolve([]string{"-"}, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{source.StdinName}, names(srcs))
}

func TestResolve_RepeatedDashYieldsOneStdinSource(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.md")
	file := filepath.Join(root, "a.md")

	srcs, err := Resolve([]string{"-", file, "-"}, Options{Extensions: []string{".md"}})
	require.NoError(t, err)
	require.Equal(t, []string{source.StdinName, file}, names(srcs))
}

func TestResolve_MissingPathIsNotFound(t *testing.T) {
	_, err := Resolve([]string{filepath.Join(t.TempDir(), "nope.md")}, Options{})
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}
