package render

import "github.com/stackhaven/zonemenu/internal/menu"

// Node is one entry of a projected zone tree. Group nodes carry Children;
// item nodes are leaves.
type Node struct {
	Key      string           `json:"key"`
	Label    string           `json:"label"`
	Icon     string           `json:"icon,omitempty"`
	Type     menu.ElementType `json:"type"`
	Children []Node           `json:"children,omitempty"`
}

// Tree is the projected content of one zone.
type Tree struct {
	Zone  string `json:"zone"`
	Nodes []Node `json:"nodes"`
}

func itemNode(key, label, icon string) Node {
	return Node{Key: key, Label: label, Icon: icon, Type: menu.TypeItem}
}

func groupNode(key, label, icon string, children []Node) Node {
	return Node{Key: key, Label: label, Icon: icon, Type: menu.TypeGroup, Children: children}
}
