// Package patch replaces a file that belongs to an externally installed
// application with a supplied payload.
//
// The host file is located through an ordered candidate list. Before the
// first modification a sibling backup (<file>.backup) is written; once a
// backup exists it is never overwritten, so the original pre-patch
// content stays recoverable across any number of re-runs.
package patch
