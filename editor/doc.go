// Package editor ties the buffer, selection, history, and layout machinery
// together behind a single mutable State.
//
// A State owns documents and sessions. A document holds the shared text, its
// edit history, and the inlays anchored into it. A session is one view onto
// a document: it owns a selection, per-view settings such as the wrap width,
// and the derived layout caches (soft wrap data, column counts, vertical
// offsets). Several sessions may share one document; an edit made through
// any of them updates the document once and remaps every session's
// selection and caches.
//
// All mutation goes through State methods. Handles are generational: a
// SessionID or DocumentID obtained from a Create call is invalidated by the
// matching close, and reusing a stale handle is a caller bug.
package editor
