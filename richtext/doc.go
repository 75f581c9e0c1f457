// Package richtext implements the styled text document behind the editor's
// text surface.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// Styling is held in spans: inline containers that carry a style map over a
// range of text. Spans move with the text they cover when the document is
// edited, and a span whose text is deleted disappears.
package richtext
