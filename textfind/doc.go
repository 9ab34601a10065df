/*
Package textfind searches text for a pattern, the way a "find" dialog of a
document viewer does.

A Finder is created for a text and a pattern and then moves forward and
backward through the matches:

	f, err := textfind.New(text, "hello world", textfind.Options{MatchWholeWord: true}, 0)
	for err == nil && f.FindNext() {
	    fmt.Printf("match at [%d,%d]\n", f.Start(), f.End())
	}

Positions are rune indices into the text, and End is inclusive. Unless
Options.MatchCase is set, text and pattern are compared after Unicode case
folding. Words of the pattern match words of the text separated by any amount
of white space. A whole-word match must not be adjacent to a character which
continues a word, see charclass.IsIgnorableForWordBreak.

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
package textfind

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'textbreak.textfind'.
func tracer() tracing.Trace {
	return tracing.Select("textbreak.textfind")
}
