// Package analyze walks parsed HTML trees and tabulates byte counts by
// category: comments, script bodies, style bodies, inline style
// attributes, and embedded data: URIs. It also inspects embedded images
// for EXIF metadata, which is both a size and a privacy signal.
//
// Design decision: The analyzer works on its own parse of the source and
// never mutates the tree, so analyze-then-transform runs see identical
// input. The minified-size figure is produced by actually running the
// minify profile on a second parse; it is exact for minify runs and a
// close estimate for everything else.
package analyze
