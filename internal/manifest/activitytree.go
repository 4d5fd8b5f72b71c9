package manifest

// ActivityNode is the SCORM 2004-derived activity tree node (spec
// §3, §4.8): an ownership tree where every non-root node has exactly
// one parent, synthesized from the default organization plus its item
// hierarchy.
type ActivityNode struct {
	Identifier         string
	Title              string
	ResourceIdentifier *string
	Children           []*ActivityNode
	Leaf               bool
	Visible            bool
}

// ActivityTree is the built tree plus an O(1) identifier index, per
// spec §4.8's invariant that lookup by identifier does not require a
// walk.
type ActivityTree struct {
	Root  *ActivityNode
	index map[string]*ActivityNode
}

// BuildActivityTree constructs an ActivityTree from the chosen default
// organization's identifier/title and its item tree. The organization
// element itself becomes the synthesized root; one ActivityNode is
// created per item, recursively.
func BuildActivityTree(orgIdentifier, orgTitle string, items []*Item) *ActivityTree {
	t := &ActivityTree{index: make(map[string]*ActivityNode)}
	root := &ActivityNode{Identifier: orgIdentifier, Title: orgTitle, Visible: true}
	root.Children = t.convert(items)
	root.Leaf = len(root.Children) == 0
	t.Root = root
	t.index[root.Identifier] = root
	return t
}

func (t *ActivityTree) convert(items []*Item) []*ActivityNode {
	nodes := make([]*ActivityNode, 0, len(items))
	for _, it := range items {
		node := &ActivityNode{
			Identifier: it.Identifier,
			Title:      it.Title,
			Visible:    true,
		}
		if it.Visible != nil {
			node.Visible = *it.Visible
		}
		if it.IdentifierRef != nil {
			ref := *it.IdentifierRef
			node.ResourceIdentifier = &ref
		}
		node.Children = t.convert(it.Children)
		node.Leaf = len(node.Children) == 0
		t.index[node.Identifier] = node
		nodes = append(nodes, node)
	}
	return nodes
}

// Node looks up an ActivityNode by identifier in O(1).
func (t *ActivityTree) Node(identifier string) (*ActivityNode, bool) {
	n, ok := t.index[identifier]
	return n, ok
}

// LeafNodes returns every node in the tree where Leaf is true.
func (t *ActivityTree) LeafNodes() []*ActivityNode {
	var leaves []*ActivityNode
	for _, n := range t.index {
		if n.Leaf {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
