package display

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/vsego/argparse-gen/errors"
)

// DefaultMaxWidth is the column limit applied to key=value attribute lines.
const DefaultMaxWidth = 72

// FormatAttr returns "name=value" for a rendered attribute, reflowing the
// value into a multi-line parenthesised group when the pair would exceed
// maxWidth. Only quoted string values can be reflowed; anything else that is
// too long is a formatting error. Words are never split and hyphens are not
// treated as break points.
func FormatAttr(name, value string, maxWidth int) (string, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	lead := len(name) + 1
	if lead+len(value)+1 <= maxWidth {
		return name + "=" + value, nil
	}

	if len(value) < 2 || value[0] != value[len(value)-1] {
		return "", errors.NewNonReprString(value)
	}
	quote := value[0]
	content := value[1 : len(value)-1]
	// Hanging indent accounts for at least 4 characters of key.
	if pad := 4 - len(name); pad > 0 {
		lead += pad
	}
	width := maxWidth - lead - 4
	if width < 1 {
		return "", fmt.Errorf("max width %d leaves no room for %s", maxWidth, name)
	}

	var b strings.Builder
	for i, line := range strings.Split(wordwrap.WrapString(content, uint(width)), "\n") {
		if i == 0 {
			fmt.Fprintf(&b, "%s=(\n        %c%s%c", name, quote, line, quote)
		} else {
			fmt.Fprintf(&b, "\n        %c %s%c", quote, line, quote)
		}
	}
	b.WriteString("\n    )")
	return b.String(), nil
}
