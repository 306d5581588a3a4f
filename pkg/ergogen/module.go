package ergogen

import (
	"fmt"
	"strings"
)

// RenderModule serializes the code blocks and discovered net parameters into
// the final ergogen footprint module source.
func RenderModule(blocks []CodeBlock, params []string) string {
	var sb strings.Builder

	sb.WriteString("module.exports = {\n")
	sb.WriteString("  params: {\n")
	sb.WriteString("    designator: 'X',    // change it accordingly\n")
	sb.WriteString("    side: 'F',          // delete if not needed\n")
	sb.WriteString("    reversible: false,  // delete if not needed\n")
	sb.WriteString("    show_3d: false,     // delete if not needed\n")
	for _, name := range params {
		fmt.Fprintf(&sb, "    %s: {type: 'net', value: '%s'}, // undefined}, // change to undefined as needed\n", name, name)
	}
	sb.WriteString("  },\n")
	sb.WriteString("  body: p => {\n")

	for _, block := range blocks {
		sb.WriteString(block.render())
	}

	fmt.Fprintf(&sb, "    let final = %s;\n", blocks[0].Name)
	for _, block := range blocks[1:] {
		fmt.Fprintf(&sb, "    final += %s;\n", block.Name)
	}
	sb.WriteString("\n    return final\n  }\n}")

	return sb.String()
}
