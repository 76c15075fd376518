package gather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRenderFile_RoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")

	block := RenderFile(root, "a.txt", zap.NewNop())

	assert.Equal(t, "[file name]: a.txt\n[file content begin]\nhello\n[file content end]\n", block)
}

func TestRenderFile_UnreadableFileYieldsEmptyContent(t *testing.T) {
	root := t.TempDir()

	block := RenderFile(root, "missing.txt", zap.NewNop())

	assert.Equal(t, "[file name]: missing.txt\n[file content begin]\n\n[file content end]\n", block)
}

func TestRenderFile_LossyDecode(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "mixed.bin", "ok\xff\xfeok")

	block := RenderFile(root, "mixed.bin", zap.NewNop())

	assert.Contains(t, block, "�")
	assert.Contains(t, block, "[file name]: mixed.bin\n")
	assert.NotContains(t, block, "\xff")
}

func TestRenderFile_NestedRelativePath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/guide.md", "# guide")

	block := RenderFile(root, "docs/guide.md", zap.NewNop())

	assert.Equal(t, "[file name]: docs/guide.md\n[file content begin]\n# guide\n[file content end]\n", block)
}
