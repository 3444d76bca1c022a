package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cpre/internal/domain"
)

func TestDiffCmd_CallsDiff(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Diff(mock.Anything, mock.MatchedBy(func(args domain.DiffArgs) bool {
		return args.Context == 1 && args.Output != nil
	})).Return(nil)

	cmd.SetArgs([]string{"diff", "-U", "1", "."})
	require.NoError(t, cmd.Execute())
}

func TestDiffCmd_PrintsUnifiedDiff(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)

	path := filepath.Join(t.TempDir(), "a.c")
	content := "top\n#ifdef A\nkeep\n#else\ndrop\n#endif\nbottom\n"
	writeFile(t, path, content)

	cmd.SetArgs([]string{"diff", "-d", "A", path})
	require.NoError(t, cmd.Execute())

	diff := stdout.String()
	assert.Contains(t, diff, "--- "+path)
	assert.Contains(t, diff, "-#ifdef A\n")
	assert.Contains(t, diff, "-drop\n")
	assert.Contains(t, diff, " keep\n")
	assert.Equal(t, content, readFile(t, path))
}
