package ergogen

import (
	"fmt"
	"strings"
)

// CodeBlock is one named text unit of the generated module body: an optional
// literal prefix, the bucket's lines, and an optional literal suffix, all
// rendered inside one backtick template string.
type CodeBlock struct {
	Name   string
	Prefix string
	Lines  []string
	Suffix string
}

type blockSpec struct {
	layer  Layer
	name   string
	prefix string
	suffix string
}

// blockOrder fixes the output order of the module body. Every block is
// emitted whether or not its bucket has lines; only the content varies.
var blockOrder = []blockSpec{
	{LayerOpening, "standard_opening", "(", "${p.at /* parametric position */}"},
	{LayerFSilkS, "front_silkscreen", "", ""},
	{LayerFCu, "front_pads", "", ""},
	{LayerFFab, "front_fabrication", "", ""},
	{LayerFMask, "front_mask", "", ""},
	{LayerFCrtYd, "front_courtyard", "", ""},
	{LayerFPaste, "front_paste", "", ""},
	{LayerPad, "pads", "", ""},
	{LayerBSilkS, "back_silkscreen", "", ""},
	{LayerBCu, "back_pads", "", ""},
	{LayerBFab, "back_fabrication", "", ""},
	{LayerBMask, "back_mask", "", ""},
	{LayerBCrtYd, "back_courtyard", "", ""},
	{LayerBPaste, "back_paste", "", ""},
	{LayerEdgeCuts, "edge_cuts", "", ""},
	{LayerDwgsUser, "user_drawing", "", ""},
	{LayerCmtsUser, "user_comments", "", ""},
	{LayerEco1User, "user_eco1", "", ""},
	{LayerEco2User, "user_eco2", "", ""},
	{LayerModel, "model", "", ""},
	{LayerClosing, "standard_closing", "", "    )"},
}

// AssembleBlocks maps the layer buckets onto the fixed block sequence
func AssembleBlocks(buckets map[Layer][]string) []CodeBlock {
	blocks := make([]CodeBlock, 0, len(blockOrder))
	for _, spec := range blockOrder {
		blocks = append(blocks, CodeBlock{
			Name:   spec.name,
			Prefix: spec.prefix,
			Lines:  buckets[spec.layer],
			Suffix: spec.suffix,
		})
	}
	return blocks
}

// render serializes the block as a const declaration in the module body
func (b CodeBlock) render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "    const %s = `%s\n", b.Name, b.Prefix)
	for _, line := range b.Lines {
		fmt.Fprintf(&sb, "        %s\n", line)
	}
	if b.Suffix != "" {
		fmt.Fprintf(&sb, "        %s\n", b.Suffix)
	}
	sb.WriteString("    `\n")
	return sb.String()
}
