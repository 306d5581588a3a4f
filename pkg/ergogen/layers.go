package ergogen

import "strings"

// Layer identifies a KiCad layer or logical section of a footprint
type Layer string

// KiCad layers in classification order. "pad" and "model" are not actual
// layers but classify the same way.
const (
	LayerFCu      Layer = "F.Cu"
	LayerBCu      Layer = "B.Cu"
	LayerPad      Layer = "pad"
	LayerFSilkS   Layer = "F.SilkS"
	LayerBSilkS   Layer = "B.SilkS"
	LayerFFab     Layer = "F.Fab"
	LayerBFab     Layer = "B.Fab"
	LayerFMask    Layer = "F.Mask"
	LayerBMask    Layer = "B.Mask"
	LayerFCrtYd   Layer = "F.CrtYd"
	LayerBCrtYd   Layer = "B.CrtYd"
	LayerFPaste   Layer = "F.Paste"
	LayerBPaste   Layer = "B.Paste"
	LayerEdgeCuts Layer = "Edge.Cuts"
	LayerDwgsUser Layer = "Dwgs.User"
	LayerCmtsUser Layer = "Cmts.User"
	LayerEco1User Layer = "Eco1.User"
	LayerEco2User Layer = "Eco2.User"
	LayerModel    Layer = "model"
)

// Synthetic buckets for footprint syntax that belongs to no layer
const (
	LayerOpening Layer = "Opening"
	LayerClosing Layer = "Closing"
)

// classifyOrder is the consuming sweep order. A line always belongs to the
// earliest layer that claims it, even when it mentions several layer names.
var classifyOrder = []Layer{
	LayerFCu,
	LayerBCu,
	LayerPad,
	LayerFSilkS,
	LayerBSilkS,
	LayerFFab,
	LayerBFab,
	LayerFMask,
	LayerBMask,
	LayerFCrtYd,
	LayerBCrtYd,
	LayerFPaste,
	LayerBPaste,
	LayerEdgeCuts,
	LayerDwgsUser,
	LayerCmtsUser,
	LayerEco1User,
	LayerEco2User,
	LayerModel,
}

// copperMarkers restricts the copper layers to lines that really are a pad or
// graphic element there. The outer footprint declaration also names a copper
// layer and must stay out of the copper buckets.
var copperMarkers = []string{"pad", "fp_line", "fp_poly", "fp_text"}

// filterLayer splits lines into those claimed by the layer and the rest.
// When markers are given, a line must contain at least one of them as well.
func filterLayer(layer Layer, lines []string, markers []string) (claimed, rest []string) {
	for _, line := range lines {
		if !strings.Contains(line, string(layer)) {
			rest = append(rest, line)
			continue
		}
		if len(markers) > 0 && !containsAny(line, markers) {
			rest = append(rest, line)
			continue
		}
		claimed = append(claimed, line)
	}
	return claimed, rest
}

func containsAny(line string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// Classify partitions the flattened lines into layer buckets with a fixed,
// ordered, consuming sweep. Every line lands in exactly one bucket. Lines no
// layer claims form the synthetic opening bucket, with explicit copper layer
// references made side-agnostic.
func Classify(lines []string) map[Layer][]string {
	buckets := make(map[Layer][]string)

	rest := lines
	for _, layer := range classifyOrder {
		var markers []string
		if layer == LayerFCu || layer == LayerBCu {
			markers = copperMarkers
		}

		var claimed []string
		claimed, rest = filterLayer(layer, rest, markers)
		if len(claimed) > 0 {
			buckets[layer] = claimed
		}
	}

	opening := make([]string, 0, len(rest))
	for _, line := range rest {
		line = strings.ReplaceAll(line, `(layer "F.Cu")`, `(layer "${p.side}.Cu")`)
		line = strings.ReplaceAll(line, `(layer "B.Cu")`, `(layer "${p.side}.Cu")`)
		opening = append(opening, line)
	}
	buckets[LayerOpening] = opening

	return buckets
}
