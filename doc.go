/*
Package textbreak is about breaking bidirectional text into lines.

Description

Laying out a paragraph of text which may contain both left-to-right and
right-to-left scripts takes more than measuring words. Characters have to be
classified by their bidirectional category, Arabic letters have to be
resolved to their contextual presentation forms, break opportunities have to
be found, and finally every line has to be re-ordered into visual order
and aligned.

This module implements such a "Bidi + Break" engine. Input is a stream of
code-points, fed to a line breaker one rune at a time. Output are pieces:
runs of characters sharing a bidi level and a style identity, positioned
along the line and ready to be converted to glyph positions for a
rendering device.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The work is split up into sub-packages, leaves first:

   bidi       bidirectional classes, directional segments, line-level reordering
   arabic     Arabic joining classes and presentation forms
   charclass  character types, line-break properties and the pair-break table
   metrics    font metrics providers (monospace, sfnt)
   linebreak  the line breakers RTFBreak and TxtBreak, break pieces, display positions
   textfind   searching text with whole-word matching

Base package textbreak provides the error type shared by the sub-packages.

Fixed-point Units

The line breakers measure widths in 1/20000 of a layout unit and font sizes
in 1/20 of a point. Fonts report advance widths in 1/1000 em. An advance of
w em-units at font size s (fixed point) and horizontal scale h (percent)
therefore contributes

   w * s * h / 100

fixed-point units to a line.

Tracing

All packages trace to selectors starting with "textbreak", using the tracing
facility of package schuko. Clients which do not configure tracing get a
no-op tracer.
*/
package textbreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the module's root tracer.
func T() tracing.Trace {
	return tracing.Select("textbreak")
}
