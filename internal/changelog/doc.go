// Package changelog assembles and renders release changelog sections from
// parsed conventional commits.
//
// A Section is built once per release from the resolved version, the
// release timestamp, and the ordered commit sequence, then rendered as a
// markdown block that is prepended to the changelog file. Rendering is
// idempotent: the only time value that appears in the output is the single
// timestamp supplied by the caller.
package changelog
