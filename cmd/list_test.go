package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cpre/internal/domain"
)

func TestListCmd_CallsEstimate(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _, _ := newTestRootCmd(t)

	mockWorkflow.EXPECT().Estimate(mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 1 && args.Symbols.Resolve("X") == domain.Undefined && args.Threads == 1
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-u", "X", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_DoesNotWrite(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)

	path := filepath.Join(t.TempDir(), "a.c")
	content := "#ifdef A\nkeep\n#endif\n#ifdef B\ndrop\n#endif\n"
	writeFile(t, path, content)

	cmd.SetArgs([]string{"list", "-d", "A", "-u", "B", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, content, readFile(t, path))
	assert.Contains(t, stdout.String(), "would filter")
	assert.Contains(t, stdout.String(), "Defined:   A")
}
