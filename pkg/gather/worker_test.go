package gather

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderAll_PreservesSelectionOrder(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for i := 0; i < 50; i++ {
		relPath := fmt.Sprintf("file_%02d.txt", i)
		writeFile(t, root, relPath, fmt.Sprintf("content %d", i))
		paths = append(paths, relPath)
	}

	blocks := RenderAll(root, paths, 0, zap.NewNop())

	require.Len(t, blocks, len(paths))
	for i, block := range blocks {
		assert.True(t, strings.HasPrefix(block, fmt.Sprintf("[file name]: file_%02d.txt\n", i)),
			"block %d out of order: %q", i, block)
	}
}

func TestRenderAll_Reproducible(t *testing.T) {
	root := t.TempDir()
	paths := []string{"a.txt", "b.txt", "c.txt"}
	for _, relPath := range paths {
		writeFile(t, root, relPath, "content of "+relPath)
	}

	first := strings.Join(RenderAll(root, paths, 0, zap.NewNop()), "\n")
	second := strings.Join(RenderAll(root, paths, 1, zap.NewNop()), "\n")

	assert.Equal(t, first, second, "worker count must not affect the buffer")
}

func TestRenderAll_UnreadableFileDoesNotAbort(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "a")
	writeFile(t, root, "c.txt", "c")
	paths := []string{"a.txt", "gone.txt", "c.txt"}

	blocks := RenderAll(root, paths, 0, zap.NewNop())

	require.Len(t, blocks, 3)
	assert.Equal(t, "[file name]: a.txt\n[file content begin]\na\n[file content end]\n", blocks[0])
	assert.Equal(t, "[file name]: gone.txt\n[file content begin]\n\n[file content end]\n", blocks[1])
	assert.Equal(t, "[file name]: c.txt\n[file content begin]\nc\n[file content end]\n", blocks[2])
}

func TestRenderAll_EmptySelection(t *testing.T) {
	blocks := RenderAll(t.TempDir(), nil, 0, zap.NewNop())
	assert.Empty(t, blocks)
}
