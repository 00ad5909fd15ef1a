package vdom

import "strconv"

// NormalizeChildren converts the many shapes a child list can take into a
// flat []*VNode, preserving order and, for sequence inputs, length.
//
// Accepted shapes:
//   - nil: empty sequence
//   - *VNode: one-element sequence (a nil *VNode yields an empty sequence)
//   - []*VNode: returned as-is, including nil entries
//   - []any: mixed leaves and nodes; strings and numbers become text
//     leaves, nil entries stay nil, unrecognized values become nil entries
//   - string, int, float64: a single text leaf
//
// Nil entries are kept in sequence inputs so that a rewrite of the
// normalized list lines up index-for-index with the input.
func NormalizeChildren(children any) []*VNode {
	switch v := children.(type) {
	case nil:
		return nil

	case *VNode:
		if v == nil {
			return nil
		}
		return []*VNode{v}

	case []*VNode:
		return v

	case []any:
		out := make([]*VNode, len(v))
		for i, item := range v {
			out[i] = normalizeLeaf(item)
		}
		return out

	case string:
		return []*VNode{Text(v)}

	case int:
		return []*VNode{Text(strconv.Itoa(v))}

	case float64:
		return []*VNode{Text(strconv.FormatFloat(v, 'f', -1, 64))}

	default:
		return nil
	}
}

// normalizeLeaf converts a single heterogeneous entry to a *VNode.
// Unrecognized values map to nil so sequence length is preserved.
func normalizeLeaf(item any) *VNode {
	switch v := item.(type) {
	case nil:
		return nil
	case *VNode:
		return v
	case string:
		return Text(v)
	case int:
		return Text(strconv.Itoa(v))
	case int64:
		return Text(strconv.FormatInt(v, 10))
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return nil
	}
}
