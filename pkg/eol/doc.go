// Package eol holds the line-ending vocabulary shared by the fixture
// generator and the detect/normalize commands.
//
// Three terminators are recognised: CR (0x0D), LF (0x0A) and CRLF (CR
// immediately followed by LF). A CR followed by LF is always one CRLF
// terminator, never a CR and an LF.
//
// Detection follows the rule of the screen editor these fixtures were
// written for: the last CR-based terminator in a buffer decides its Style
// (CRLF gives PC, a lone CR gives Mac) and a buffer without CR is Unix.
// Lone LFs never change the result, so mixed buffers are classified by
// their final CR-bearing line.
package eol
