/*
huffman.go builds a Huffman code table over the indices a played move can
take within its from-square's legal-destination list. Low indices are
overwhelmingly more common across real games (the first destination
Squares() yields, in file-then-rank order, tends to be a short, frequent
move), so coding them this way keeps the index part of each stored ply
short: codes run from 2 to 11 bits and average about 3.3 bits over the
frequency table, on top of the 6-bit from-square each ply also stores.
*/
package chego

// huffmanNode is one node of the coding tree: a leaf holds an index, an
// internal node holds two children and no index.
type huffmanNode struct {
	freq  int
	index int // -1 for internal nodes
	left  *huffmanNode
	right *huffmanNode
}

// buildHuffmanTree returns the root of a Huffman tree over freq, where
// freq[i] is the relative frequency of index i. Ties are broken by
// picking the lowest-index node first, keeping the resulting tree
// deterministic.
func buildHuffmanTree(freq []int) *huffmanNode {
	nodes := make([]*huffmanNode, len(freq))
	for i, f := range freq {
		nodes[i] = &huffmanNode{freq: f, index: i}
	}

	for len(nodes) > 1 {
		a, b := 0, 1
		if nodes[b].freq < nodes[a].freq {
			a, b = b, a
		}
		for i := 2; i < len(nodes); i++ {
			switch {
			case nodes[i].freq < nodes[a].freq:
				a, b = i, a
			case nodes[i].freq < nodes[b].freq:
				b = i
			}
		}

		merged := &huffmanNode{
			freq:  nodes[a].freq + nodes[b].freq,
			index: -1,
			left:  nodes[a],
			right: nodes[b],
		}

		// Remove a and b (higher index first so the lower index's
		// position is unaffected) and append the merge.
		if a < b {
			a, b = b, a
		}
		nodes = append(nodes[:a], nodes[a+1:]...)
		nodes = append(nodes[:b], nodes[b+1:]...)
		nodes = append(nodes, merged)
	}

	return nodes[0]
}

// huffmanCodes walks the tree in pre-order, recording the bit string that
// reaches each leaf's index.
func huffmanCodes(root *huffmanNode, n int) []string {
	codes := make([]string, n)
	var walk func(node *huffmanNode, path string)
	walk = func(node *huffmanNode, path string) {
		if node == nil {
			return
		}
		if node.left == nil && node.right == nil {
			codes[node.index] = path
			return
		}
		walk(node.left, path+"0")
		walk(node.right, path+"1")
	}
	walk(root, "")
	return codes
}
