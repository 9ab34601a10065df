/*
Package metrics provides font metrics for line breaking.

Line breakers measure characters through the Font interface. Widths are
given in 1/1000 em, in the tradition of PostScript font metrics, and are
scaled to the font size by the line breaker.

Two providers are included. Monospace assigns every character a width of
half an em or a full em, according to its East Asian width property (see
UAX#11). SFNT reads advance widths and vertical metrics from a TrueType or
OpenType font.

Monospace widths depend on a Context, as UAX#11 leaves the width of
ambiguous characters to the typesetting environment:

	ctx := metrics.ContextFromEnvironment()
	font := metrics.NewMonospace(ctx)
	w, ok := font.CharWidth('世') // w == 1000

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
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textbreak.metrics'.
func tracer() tracing.Trace {
	return tracing.Select("textbreak.metrics")
}
