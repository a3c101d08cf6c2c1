// Package compose renders a quote onto a photo.
//
// # Text
//
// [Wrap] breaks text into lines of at most a fixed number of characters
// (runes, not pixels), splitting words that are longer than a line.
// [ComposeText] joins the wrapped quote and the upper-cased author into
// the block that gets drawn:
//
//	Be yourself.
//	 - OSCAR WILDE
//
// # Image
//
// [Renderer.Render] flattens four steps onto a copy of the photo:
//
//  1. Blur the photo with a 5x5 box kernel (a ring of ones).
//  2. Build a transparent glow layer, Gaussian-blur it, draw the text in
//     the glow color, and composite it using its own alpha as the mask.
//  3. Build a second transparent layer, draw the text in the text color,
//     and composite it the same way.
//  4. Return the composite. [Save] writes it, choosing the encoder from
//     the file extension.
//
// The text block is anchored at (AnchorX, height/4). Because wrapping
// counts characters rather than measuring glyphs, long lines may run past
// the right edge with wide fonts.
//
// Rendering is deterministic: the same photo, text, face and options
// always produce the same pixels.
package compose
