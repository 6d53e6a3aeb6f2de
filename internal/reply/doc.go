// Package reply implements the reply-generation workflow behind the
// emailwriter screen.
//
// # Lifecycle
//
// A Session holds every piece of per-screen state: the pasted email, the
// selected tone, the outcome of the latest generation attempt, the editable
// draft seeded from that outcome, whether the output section is visible and
// whether the draft was just copied.
//
//	Idle ──Begin──▶ Pending ──Complete──▶ Success
//	                   │                    (draft = service reply)
//	                   └──────Complete──▶ Failed
//	                                        (draft = FallbackReply)
//
// Begin validates the inputs and hands back an Attempt carrying a fresh ID.
// The caller runs the attempt (Controller.Run) off the UI loop and feeds the
// result to Complete, which commits it only if the ID still matches the
// latest attempt. Results from superseded attempts, or from attempts that
// were in flight when Reset ran, are dropped.
//
// Transport failures never surface as errors. The Controller converts them
// into a Failed outcome whose text is FallbackReply so that the workflow
// always ends with something the user can edit, copy or download.
//
// # Derived state
//
// Measure, CharacterCount and WordCount are pure functions of the current
// text and are recomputed on every render. The "copied" flag is an expiring
// CopyToken: Copy issues a token, ExpireCopy clears the flag only when
// handed the newest token.
package reply
