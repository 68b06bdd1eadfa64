// Package fakeio is an in-memory edio.IO for tests: a map stands in
// for the filesystem and a table of canned (command, stdin) pairs
// stands in for the shell, grounded on original_source's FakeIO.
package fakeio
