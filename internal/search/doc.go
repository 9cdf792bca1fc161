// Package search filters text content line by line. Every function is pure:
// results are substrings of the input content, in source order, and no text
// is copied.
//
// Case-insensitive matching lowercases both the line and the query with the
// Unicode default (locale independent) lowercase mapping before testing for
// containment. It is lowercasing, not full case folding, so pairs such as
// "ß" and "ss" do not match each other.
package search
