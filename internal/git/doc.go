// Package git wraps the git binary for branch enumeration and the
// switch/pull/push/fetch operations gb performs. All calls shell out to
// git with argv vectors; nothing is interpolated into a shell string.
package git
