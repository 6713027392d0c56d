package core

import (
	"fmt"
	"strings"
)

// DumpTree renders this scope and its descendants as an indented snapshot for
// debugging. Output is deterministic for a given tree shape (no IDs, children
// in creation order) so it is suitable for golden tests.
func (c *Context) DumpTree() string {
	var b strings.Builder
	c.dumpInto(&b, 0)
	return b.String()
}

func (c *Context) dumpInto(b *strings.Builder, depth int) {
	observers := 0
	for _, list := range c.observers {
		observers += len(list)
	}
	fmt.Fprintf(b, "%sscope %q [requestables:%d executables:%d observers:%d flags:%d]\n",
		strings.Repeat("  ", depth), c.name,
		len(c.requestables), len(c.executables), observers, len(c.flags))
	for _, child := range c.children {
		child.dumpInto(b, depth+1)
	}
}
