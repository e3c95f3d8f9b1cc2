// Package tree implements TransposeTree, a left-leaning 2-3 red-black
// tree (Sedgewick) whose per-node fields are stored as parallel arrays
// indexed by node ordinal rather than as a node-per-entry struct: left
// child index, right child index and node colour. The two child-index
// arrays are block.Inflatable blocks, so their width grows with
// population instead of being fixed at construction.
//
// Tree never reads keys. Callers supply a Comparator closure that reads
// their own parallel key array by ordinal, and own the key/value arrays
// themselves; Tree only ever mutates its own three arrays plus the node
// count.
//
// As with package block, nothing here is safe for concurrent mutation;
// concurrent readers are only safe against a frozen tree.
package tree

// NIL denotes the absence of a child. It is exposed as a plain int so
// callers comparing a Lookup/Locate result against "not found" do not
// need to import anything else.
const NIL = -1
