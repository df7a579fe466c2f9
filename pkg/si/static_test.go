package si_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

func loadTestdata(t *testing.T, name string) *packages.Package {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checks with the go command")
	}

	pkgs, err := packages.Load(&packages.Config{Mode: loadMode, Tests: false}, "./testdata/"+name)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	return pkgs[0]
}

// markedLines returns the line numbers carrying an "// ERROR" comment.
func markedLines(t *testing.T, path string) map[int]bool {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	lines := make(map[int]bool)
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		if strings.HasSuffix(strings.TrimSpace(sc.Text()), "// ERROR") {
			lines[n] = true
		}
	}
	require.NoError(t, sc.Err())
	return lines
}

func TestStatic_ValidPackageTypeChecks(t *testing.T) {
	pkg := loadTestdata(t, "valid")

	assert.Empty(t, pkg.Errors)
	assert.Empty(t, pkg.TypeErrors)
}

func TestStatic_DimensionMismatchIsRejected(t *testing.T) {
	pkg := loadTestdata(t, "mismatch")

	path, err := filepath.Abs(filepath.Join("testdata", "mismatch", "mismatch.go"))
	require.NoError(t, err)
	want := markedLines(t, path)
	require.NotEmpty(t, want)

	got := make(map[int]bool)
	for _, e := range pkg.TypeErrors {
		pos := e.Fset.Position(e.Pos)
		assert.Equal(t, filepath.Base(path), filepath.Base(pos.Filename), e.Msg)
		assert.True(t, want[pos.Line], "unexpected type error at line %d: %s", pos.Line, e.Msg)
		got[pos.Line] = true
	}
	for line := range want {
		assert.True(t, got[line], "line %d type-checks but should not", line)
	}
}
