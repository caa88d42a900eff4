package core

import (
	"strings"

	"github.com/vsego/argparse-gen/schema"
)

// helpDict extracts a parameter-name to help-text mapping from the object's
// docstring. Lines are stripped and scanned one at a time: a parameter
// directive starts a new entry seeded with the rest of the line, subsequent
// non-blank lines are glued on with single spaces, and a blank line commits
// and clears the entry in progress.
//
// For classes the constructor's docstring is scanned as well and layered in
// last, so constructor entries override same-named class entries.
func (g *Generator) helpDict(obj *schema.Object) map[string]string {
	result := map[string]string{}

	currName, currHelp := "", ""
	flush := func() {
		if currName != "" && currHelp != "" {
			result[currName] = currHelp
		}
	}

	if obj.Doc != "" {
		for _, raw := range strings.Split(obj.Doc, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				flush()
				currName, currHelp = "", ""
			} else if m := g.paramRe.FindStringSubmatchIndex(line); m != nil && m[2*g.nameGroup] >= 0 {
				flush()
				currName = line[m[2*g.nameGroup]:m[2*g.nameGroup+1]]
				currHelp = line[m[1]-m[0]:]
			} else if currName != "" {
				if !strings.HasSuffix(currHelp, " ") {
					currHelp += " "
				}
				currHelp += line
			}
		}
		flush()
	}

	// A class without a described constructor simply contributes nothing
	// extra; that is not an error.
	if obj.IsClass() && obj.Init != nil {
		for name, help := range g.helpDict(obj.Init) {
			result[name] = help
		}
	}

	return result
}
