package tree

import (
	"fmt"
	"strings"
)

// ClassNames are the rendered labels for the two target classes.
var ClassNames = [2]string{"Not Approved", "Approved"}

// RenderDepth is how many levels of the tree are rendered. Deeper
// levels add little for a reader and a lot of noise.
const RenderDepth = 3

// Render returns a text drawing of the top levels of the fitted tree,
// suitable for a terminal. Subtrees below the depth limit collapse to
// their majority class.
func (c *Classifier) Render() string {
	if c == nil || c.Root == nil {
		return "(no tree fitted)"
	}
	var b strings.Builder
	c.renderNode(&b, c.Root, "", "", 1)
	return strings.TrimRight(b.String(), "\n")
}

func (c *Classifier) renderNode(b *strings.Builder, n *Node, prefix, branch string, depth int) {
	if n.Leaf() || depth > RenderDepth {
		fmt.Fprintf(b, "%s%s%s (samples %d, gini %.3f)\n",
			prefix, branch, ClassNames[n.Class], n.Samples, n.Impurity)
		return
	}

	fmt.Fprintf(b, "%s%s%s <= %.3f (samples %d, gini %.3f)\n",
		prefix, branch, c.Columns[n.Feature], n.Threshold, n.Samples, n.Impurity)

	childPrefix := prefix
	if branch != "" {
		if strings.HasSuffix(branch, "├─ ") {
			childPrefix += "│  "
		} else {
			childPrefix += "   "
		}
	}
	c.renderNode(b, n.Left, childPrefix, "├─ ", depth+1)
	c.renderNode(b, n.Right, childPrefix, "└─ ", depth+1)
}
