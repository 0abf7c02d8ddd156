package ui

import "fmt"

// maxInspectorLines bounds the parameter lines shown under the name.
const maxInspectorLines = 8

// Inspector is a right-side panel that shows the focused material: its label,
// position in the list and parameter values. It owns its nodes and rewrites
// their text when AppendNodes is called with visible true.
type Inspector struct {
	panel *Node
	title *Node
	name  *Node
	lines []*Node
}

// NewInspector creates an Inspector styled by .inspector, .inspector-title and .inspector-line.
func NewInspector() *Inspector {
	in := &Inspector{
		panel: NewNode("panel", "inspector", "", ""),
		title: NewNode("label", "inspector-title", "", "Inspector"),
		name:  NewNode("label", "inspector-line", "", ""),
	}
	in.name.Line = 1
	for i := 0; i < maxInspectorLines; i++ {
		n := NewNode("label", "inspector-line", "", "")
		n.Line = i + 2
		in.lines = append(in.lines, n)
	}
	return in
}

// Param is one named value shown in the inspector.
type Param struct {
	Name  string
	Value string
}

// Selection holds the data shown in the inspector.
// Pass this from the scene layer; ui does not depend on scene.
type Selection struct {
	Index  int
	Count  int
	Label  string
	Shape  string
	Params []Param
}

// AppendNodes appends inspector nodes to dst when visible is true, after updating labels from sel.
// When visible is false, dst is returned unchanged. Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.title.Text = fmt.Sprintf("Inspector  %d/%d", sel.Index+1, sel.Count)
	in.name.Text = sel.Label + " (" + sel.Shape + ")"
	dst = append(dst, in.panel, in.title, in.name)
	for i, n := range in.lines {
		if i >= len(sel.Params) {
			break
		}
		p := sel.Params[i]
		n.Text = p.Name + ": " + p.Value
		dst = append(dst, n)
	}
	if len(sel.Params) == 0 {
		in.lines[0].Text = "no parameters"
		dst = append(dst, in.lines[0])
	}
	return dst
}
