// Package parser extracts the front matter block of a Markdown document.
package parser

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/starford/nexus/internal/models"
)

// UnnamedTitle is used when neither front matter nor file name yield a title.
const UnnamedTitle = "<unnamed>"

// yamlFormat restricts detection to `---` fenced YAML so that documents
// starting with `{` or `+++` are not mistaken for JSON or TOML metadata.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Extract decodes the leading front matter of content. It never fails:
// absent or malformed metadata yields the zero FrontMatter.
func Extract(content []byte) models.FrontMatter {
	var fm models.FrontMatter
	if _, err := frontmatter.Parse(bytes.NewReader(content), &fm, yamlFormat); err != nil {
		return models.FrontMatter{}
	}
	return fm
}

// DeriveTitle returns title when set, otherwise the file name of path
// without its extension, otherwise UnnamedTitle.
func DeriveTitle(title, path string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return UnnamedTitle
	}
	if stem := strings.TrimSuffix(base, filepath.Ext(base)); stem != "" {
		return stem
	}
	return UnnamedTitle
}
