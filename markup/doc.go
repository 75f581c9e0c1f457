// Package markup serializes tables and documents to HTML.
//
// Output is deterministic: the same snapshot always renders to the same
// bytes, with style attributes written in declaration order.
package markup
