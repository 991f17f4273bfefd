package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Gtd232/AerfuckyingExtensions/extensions"
)

// formatExtension renders an extension's metadata for terminal display.
func formatExtension(info extensions.Info) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "extension %s (%s)\n\n", info.ID, info.Name)

	for _, b := range info.Blocks {
		fmt.Fprintf(&sb, "%s  [%s]\n", b.Opcode, b.Type)
		fmt.Fprintf(&sb, "    %s\n", b.Text)
		names := make([]string, 0, len(b.Args))
		for name := range b.Args {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			arg := b.Args[name]
			sb.WriteString("    " + name + ": " + string(arg.Type))
			if arg.Menu != "" {
				fmt.Fprintf(&sb, " (menu %s)", arg.Menu)
			}
			if arg.Default != nil {
				fmt.Fprintf(&sb, " = %v", arg.Default)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	menuNames := make([]string, 0, len(info.Menus))
	for name := range info.Menus {
		menuNames = append(menuNames, name)
	}
	sort.Strings(menuNames)
	for _, name := range menuNames {
		menu := info.Menus[name]
		values := make([]string, len(menu.Items))
		for i, item := range menu.Items {
			values[i] = item.Value
		}
		fmt.Fprintf(&sb, "menu %s: %s\n", name, strings.Join(values, ", "))
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}
