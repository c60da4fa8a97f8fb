// Package search implements incremental find over the rows of a document.
//
// A Session is driven one keystroke at a time by a prompt:
//
//   - Begin snapshots the cursor and scroll offsets
//   - Step is called with the current query and the kind of key pressed
//   - EventNext and EventPrevious step to the following or preceding match,
//     wrapping around the ends of the document
//   - EventConfirm keeps the cursor on the match
//   - EventCancel restores the snapshot taken by Begin
//
// Matching is a case-sensitive literal substring search; an empty query
// never matches. A scan visits each row at most once, so it terminates even
// when nothing matches.
package search
