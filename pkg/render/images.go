package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/BourgeoisBear/rasterm"
)

// ImageTier represents the terminal's image rendering capability.
type ImageTier int

const (
	TierNone  ImageTier = iota // text only
	TierKitty                  // Kitty graphics protocol (Kitty, Ghostty, WezTerm)
	TierIterm                  // iTerm2 inline images (OSC 1337)
)

// DetectImageTier determines the terminal's image rendering capability.
// configOverride is the rendering.images config value: "auto" (default),
// "inline" or "text".
func DetectImageTier(configOverride string) ImageTier {
	switch strings.ToLower(configOverride) {
	case "", "auto", "inline":
		return detectBest()
	default:
		return TierNone
	}
}

// detectBest probes the environment for a supported inline image protocol.
// Sixel needs a paletted image, which the chart renderer does not produce.
func detectBest() ImageTier {
	if rasterm.IsKittyCapable() {
		return TierKitty
	}
	if rasterm.IsItermCapable() {
		return TierIterm
	}
	return TierNone
}

// WriteInlineImage writes a PNG image to w using the protocol for tier.
// TierNone writes nothing.
func WriteInlineImage(w io.Writer, pngData []byte, tier ImageTier) error {
	switch tier {
	case TierKitty:
		return rasterm.KittyCopyPNGInline(w, bytes.NewReader(pngData), rasterm.KittyImgOpts{})
	case TierIterm:
		return rasterm.ItermCopyFileInline(w, bytes.NewReader(pngData), int64(len(pngData)))
	default:
		return nil
	}
}
