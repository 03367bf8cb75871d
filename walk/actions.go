package walk

import (
	"github.com/CodingLucasLi/Clawome/config"
	"github.com/CodingLucasLi/Clawome/snapshot"
)

// interactiveRoles is the ARIA role set that always contributes a click
// action (spec.md §4.3).
var interactiveRoles = map[string]bool{
	"button": true, "link": true, "checkbox": true, "radio": true,
	"switch": true, "tab": true, "menuitem": true, "option": true,
	"treeitem": true,
}

// classifyActions implements spec.md §4.3's "Action detection".
func classifyActions(n *snapshot.Node, clickable bool, cfg config.Config) map[Action]bool {
	actions := map[Action]bool{}
	degraded := isDisabledOrReadonly(n)

	isTypeable := false
	switch {
	case hasContentEditable(n):
		isTypeable = true
	case n.Tag == "input" && cfg.TypeableInputTypes[n.Attrs["type"]]:
		isTypeable = true
	case n.Tag == "textarea":
		isTypeable = true
	case n.Attrs["role"] == "combobox":
		isTypeable = true
	}

	if isTypeable && !degraded {
		actions[ActionType] = true
	} else if isTypeable && degraded {
		actions[ActionClick] = true
	}

	if n.Tag == "select" {
		actions[ActionSelect] = true
	}

	if isClickTag(n.Tag) ||
		(n.Tag == "input" && cfg.ClickableInputTypes[n.Attrs["type"]]) ||
		interactiveRoles[n.Attrs["role"]] ||
		n.Attrs["onclick"] != "" ||
		n.Styles["cursor"] == "pointer" ||
		clickable {
		actions[ActionClick] = true
	}

	return actions
}

func isClickTag(tag string) bool {
	switch tag {
	case "a", "button":
		return true
	}
	return false
}

func hasContentEditable(n *snapshot.Node) bool {
	v, ok := n.Attrs["contenteditable"]
	return ok && v != "false"
}

func isDisabledOrReadonly(n *snapshot.Node) bool {
	if _, ok := n.Attrs["disabled"]; ok {
		return true
	}
	if _, ok := n.Attrs["readonly"]; ok {
		return true
	}
	return n.Attrs["aria-disabled"] == "true" || n.Attrs["aria-readonly"] == "true"
}
