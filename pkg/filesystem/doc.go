// Package filesystem provides the byte-exact file access used by eolmix.
//
// All access goes through an afero.Fs so commands run against the real
// OS filesystem while tests use an in-memory one. Writes never translate
// line endings: the bytes handed to WriteExact are the bytes on disk.
package filesystem
