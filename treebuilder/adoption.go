package treebuilder

import "github.com/htmlkit/htmlkit/dom"

// inBodyEndTagFormatting is the adoption agency algorithm (spec.md §6.6),
// adapted line-by-line from chtml/html/parse.go's inBodyEndTagFormatting.
func (b *Builder) inBodyEndTagFormatting(name string) {
	// Steps 1-2.
	if current := b.top(); current.Data == name && b.afe.index(current) == -1 {
		b.oe.pop()
		return
	}

	// Steps 3-5: the outer loop runs at most 8 times.
	for i := 0; i < 8; i++ {
		// Step 6: find the formatting element.
		var formattingElement *dom.Node
		for j := len(b.afe) - 1; j >= 0; j-- {
			if b.afe[j].marker {
				break
			}
			if b.afe[j].node.Data == name {
				formattingElement = b.afe[j].node
				break
			}
		}
		if formattingElement == nil {
			b.inBodyEndTagOther(name)
			return
		}

		// Step 7: ignore the tag if it's not in the stack of open elements.
		feIndex := b.oe.index(formattingElement)
		if feIndex == -1 {
			b.afe.remove(formattingElement)
			return
		}
		// Step 8: ignore the tag if it's not in scope.
		if !b.elementInScope(defaultScope, name) {
			return
		}

		// Step 9 is a parse error with no structural effect; omitted.

		// Steps 10-11: find the furthest block.
		var furthestBlock *dom.Node
		for _, e := range b.oe[feIndex:] {
			if isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == nil {
			e := b.oe.pop()
			for e != formattingElement {
				e = b.oe.pop()
			}
			b.afe.remove(e)
			return
		}

		// Steps 12-13: common ancestor and bookmark.
		commonAncestor := b.doc.Root
		if feIndex > 0 {
			commonAncestor = b.oe[feIndex-1]
		}
		bookmark := b.afe.index(formattingElement)

		// Step 14: the inner loop.
		lastNode := furthestBlock
		node := furthestBlock
		x := b.oe.index(node)
		j := 0
		for {
			j++
			x--
			node = b.oe[x]
			if node == formattingElement {
				break
			}
			if ni := b.afe.index(node); j > 3 && ni > -1 {
				b.afe.remove(node)
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if b.afe.index(node) == -1 {
				b.oe.remove(node)
				continue
			}
			clone := cloneNode(node)
			b.afe[b.afe.index(node)].node = clone
			b.oe[b.oe.index(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = b.afe.index(node) + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		// Step 15: reparent lastNode.
		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		switch commonAncestor.Data {
		case "table", "tbody", "tfoot", "thead", "tr":
			b.fosterParent(lastNode)
		default:
			commonAncestor.AppendChild(lastNode)
		}

		// Steps 16-18: move furthestBlock's children under a clone of the
		// formatting element.
		clone := cloneNode(formattingElement)
		dom.ReparentChildren(clone, furthestBlock)
		furthestBlock.AppendChild(clone)

		// Step 19: fix up the active formatting elements list.
		if oldLoc := b.afe.index(formattingElement); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		b.afe.remove(formattingElement)
		b.afe.insert(bookmark, clone)

		// Step 20: fix up the stack of open elements.
		b.oe.remove(formattingElement)
		b.oe.insert(b.oe.index(furthestBlock)+1, clone)
	}
}

// inBodyEndTagOther is the "any other end tag" algorithm (spec.md §6.4).
func (b *Builder) inBodyEndTagOther(name string) {
	for i := len(b.oe) - 1; i >= 0; i-- {
		if b.oe[i].Data == name {
			b.oe = b.oe[:i]
			break
		}
		if isSpecialElement(b.oe[i]) {
			break
		}
	}
}
