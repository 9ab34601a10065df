/*
Package linebreak breaks a stream of characters into lines and pieces.

Two line breakers are provided. RTFBreak is meant for rich text, where
characters carry style identities and user data, tabs may be expanded to
positioned tab stops, and lines may be cut into pieces for pagination.
TxtBreak is meant for plain text fields, with support for comb text
(a fixed advance per character), single-line fields and Arabic Shadda
composition.

Both breakers are fed one character at a time. Each character is measured
with a metrics.Font and its advance width is accumulated in fixed point
units of 1/20000 pt. When a line overflows, the breaker looks for the
rightmost permissible break opportunity (see package charclass), moves the
overflowing characters to the next line and finishes the current line in
three passes: the line is split into pieces of uniform bidi level and
style, the pieces are reordered for display, and the line is aligned.

	rb := linebreak.NewRTFBreak(linebreak.ExpandTab)
	rb.SetFont(font)
	rb.SetFontSize(12)
	rb.SetLineBoundary(0, 200)
	for _, r := range text {
	    if rb.AppendChar(r) > linebreak.Piece {
	        for i := 0; i < rb.CountBreakPieces(); i++ {
	            piece := rb.GetBreakPiece(i)
	            …
	        }
	        rb.ClearBreakPieces()
	    }
	}

Finished lines are double buffered: the pieces of a finished line stay
valid while the next line accumulates, until the client calls
ClearBreakPieces. A piece never copies characters; it refers to the
characters of its line by index and a generation number, and borrowing
characters for a cleared line returns nil.

Breakers are not safe for concurrent use. All character tables they consult
are immutable.

___________________________________________________________________________

BSD License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textbreak.linebreak'.
func tracer() tracing.Trace {
	return tracing.Select("textbreak.linebreak")
}
