// Package tags re-applies tag changes around completion actions.
//
// Completion and tagging are separate, non-atomic remote operations, and
// completion-adjacent metadata updates become unreliable once a task is
// completed. The reconciler therefore applies the tag update BEFORE the
// completion call, after re-resolving the task's current location on its
// own (a caller-supplied project hint may be stale by the time completion
// runs). A failed tag write aborts the whole completion; a tag write that
// succeeded is not rolled back if the completion then fails.
package tags
