// Package editor provides a Bubble Tea rich-text editor component with an
// embedded table, a formatting toolbar and a live HTML preview.
//
// The component owns a richtext.Document and at most one table.Table. Focus
// moves between the text surface and the table grid; the toolbar formats
// whichever region has focus. A creation dialog builds new tables, a context
// menu edits their structure, and every effective mutation regenerates the
// HTML export and reports it through Config.OnChange.
package editor
