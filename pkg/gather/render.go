// File: pkg/gather/render.go
package gather

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// blockTemplate frames one file in the combined buffer: an opening marker
// naming the file, the raw content, and a closing marker. The content is not
// escaped; marker-shaped text inside a file passes through untouched.
const blockTemplate = "[file name]: {file_name}\n[file content begin]\n{file_content}\n[file content end]\n"

// RenderFile reads one selected file, resolved against the search root, and
// wraps its content in the block template. Bytes are decoded lossily: invalid
// UTF-8 sequences become the replacement character. A failed read is tolerated
// so one unreadable file never aborts the aggregation; the failure is logged
// and the block carries empty content.
func RenderFile(root, relPath string, logger *zap.Logger) string {
	logger.Debug("Reading file", zap.String("path", relPath))

	var content string
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	if err != nil {
		logger.Error("Failed to read file", zap.String("path", relPath), zap.Error(err))
	} else {
		content = strings.ToValidUTF8(string(data), "�")
	}

	block := strings.ReplaceAll(blockTemplate, "{file_name}", relPath)
	return strings.ReplaceAll(block, "{file_content}", content)
}
