// Package selection keeps the "currently chosen album" index
// consistent between the cover strip and the detail pane.
//
// The Coordinator is deliberately single-threaded: it is owned by the
// UI event loop and is only ever touched from there. It exposes the
// Provider interface the strip renders from, re-clamps the index
// whenever the album list changes length, and answers detail-field
// queries defensively (an invalid index yields empty fields rather
// than an error, matching the browse-never-crashes policy).
package selection
