package session

import (
	"encoding/json"
	"fmt"

	"github.com/tessvane/patchboard/pkg/patch"
)

// MarshalNodeSnippet encodes one node as a standalone JSON snippet, the
// form the editor places on the clipboard when a node is yanked. Wires are
// not part of a snippet; they reference knobs outside the node.
func MarshalNodeSnippet(n *patch.Node) ([]byte, error) {
	data, err := json.MarshalIndent(nodeToJSON(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snippet: %w", err)
	}
	return data, nil
}

// UnmarshalNodeSnippet decodes a snippet produced by [MarshalNodeSnippet].
// The caller gives the decoded node a home with [ConfigureNode], typically
// on a freshly created node so the paste gets its own identity.
func UnmarshalNodeSnippet(data []byte) (NodeJSON, error) {
	var nj NodeJSON
	if err := json.Unmarshal(data, &nj); err != nil {
		return NodeJSON{}, fmt.Errorf("decode snippet: %w", err)
	}
	return nj, nil
}
