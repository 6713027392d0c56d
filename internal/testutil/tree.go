package testutil

import (
	"strings"

	"github.com/hupe1980/contexture/core"
)

// BuildTree creates subcontexts of root for every slash-separated path and
// returns all created scopes keyed by path. Intermediate path segments are
// created once and shared. Example:
//
//	scopes := testutil.BuildTree(g.Context, "a", "a/a1", "a/a2", "b")
//	sibling := scopes["a/a2"]
func BuildTree(root *core.Context, paths ...string) map[string]*core.Context {
	scopes := map[string]*core.Context{}
	for _, path := range paths {
		parent := root
		prefix := ""
		for _, seg := range strings.Split(path, "/") {
			if prefix == "" {
				prefix = seg
			} else {
				prefix = prefix + "/" + seg
			}
			if existing, ok := scopes[prefix]; ok {
				parent = existing
				continue
			}
			child := parent.CreateSubcontext(seg)
			scopes[prefix] = child
			parent = child
		}
	}
	return scopes
}
