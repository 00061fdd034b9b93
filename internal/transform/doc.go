// Package transform applies size-reduction profiles to parsed HTML trees.
//
// Two profiles exist:
//   - minify: lossless removal of comments and redundant whitespace
//   - aggressive: additionally strips scripts, styles, embeds, inline
//     event handlers, and (optionally) images, while preserving all
//     visible text
//
// Design decision: We mutate the tree in place rather than building a
// filtered copy because golang.org/x/net/html trees are cheap to edit
// (sibling pointers) and each tree is owned by a single invocation and
// discarded after rendering. Removal rules are idempotent and commute,
// so the passes can run in any order with the same result.
package transform
