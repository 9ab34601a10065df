package arabic

// Special code-points.
const (
	NoChar          = rune(0xFEFF) // ZERO WIDTH NO-BREAK SPACE; no neighbour, or consumed by a ligature
	Tatweel         = rune(0x0640)
	Lam             = rune(0x0644)
	Heh             = rune(0x0647)
	Shadda          = rune(0x0651)
	SuperscriptAlef = rune(0x0670)
)

// JoiningType classifies how a letter connects to its neighbours.
type JoiningType uint8

// Joining types, see the Unicode ArabicShaping.txt data file.
const (
	NonJoining   JoiningType = iota // does not connect, e.g. Hamza
	RightJoining                    // connects to the preceding letter only, e.g. Reh
	DualJoining                     // connects on both sides, e.g. Beh
	JoinCausing                     // Tatweel
	Transparent                     // harakat and other marks; skipped for joining
)

func (jt JoiningType) String() string {
	switch jt {
	case RightJoining:
		return "R"
	case DualJoining:
		return "D"
	case JoinCausing:
		return "C"
	case Transparent:
		return "T"
	}
	return "U"
}

// forms holds the four presentation forms of a letter.
type forms struct {
	isolated, final, initial, medial rune
	joining                          JoiningType
}

func dual(iso rune) forms {
	return forms{iso, iso + 1, iso + 2, iso + 3, DualJoining}
}

// right-joining letters have no initial or medial form of their own
func right(iso rune) forms {
	return forms{iso, iso + 1, iso, iso + 1, RightJoining}
}

var formTable = map[rune]forms{
	0x0621: {0xFE80, 0xFE80, 0xFE80, 0xFE80, NonJoining}, // HAMZA
	0x0622: right(0xFE81),                                // ALEF WITH MADDA ABOVE
	0x0623: right(0xFE83),                                // ALEF WITH HAMZA ABOVE
	0x0624: right(0xFE85),                                // WAW WITH HAMZA ABOVE
	0x0625: right(0xFE87),                                // ALEF WITH HAMZA BELOW
	0x0626: dual(0xFE89),                                 // YEH WITH HAMZA ABOVE
	0x0627: right(0xFE8D),                                // ALEF
	0x0628: dual(0xFE8F),                                 // BEH
	0x0629: right(0xFE93),                                // TEH MARBUTA
	0x062A: dual(0xFE95),                                 // TEH
	0x062B: dual(0xFE99),                                 // THEH
	0x062C: dual(0xFE9D),                                 // JEEM
	0x062D: dual(0xFEA1),                                 // HAH
	0x062E: dual(0xFEA5),                                 // KHAH
	0x062F: right(0xFEA9),                                // DAL
	0x0630: right(0xFEAB),                                // THAL
	0x0631: right(0xFEAD),                                // REH
	0x0632: right(0xFEAF),                                // ZAIN
	0x0633: dual(0xFEB1),                                 // SEEN
	0x0634: dual(0xFEB5),                                 // SHEEN
	0x0635: dual(0xFEB9),                                 // SAD
	0x0636: dual(0xFEBD),                                 // DAD
	0x0637: dual(0xFEC1),                                 // TAH
	0x0638: dual(0xFEC5),                                 // ZAH
	0x0639: dual(0xFEC9),                                 // AIN
	0x063A: dual(0xFECD),                                 // GHAIN
	0x0640: {0x0640, 0x0640, 0x0640, 0x0640, JoinCausing}, // TATWEEL
	0x0641: dual(0xFED1),                                 // FEH
	0x0642: dual(0xFED5),                                 // QAF
	0x0643: dual(0xFED9),                                 // KAF
	0x0644: dual(0xFEDD),                                 // LAM
	0x0645: dual(0xFEE1),                                 // MEEM
	0x0646: dual(0xFEE5),                                 // NOON
	0x0647: dual(0xFEE9),                                 // HEH
	0x0648: right(0xFEED),                                // WAW
	0x0649: {0xFEEF, 0xFEF0, 0xFBE8, 0xFBE9, DualJoining}, // ALEF MAKSURA
	0x064A: dual(0xFEF1),                                 // YEH
	0x0671: right(0xFB50),                                // ALEF WASLA
	0x0679: dual(0xFB66),                                 // TTEH
	0x067A: dual(0xFB5E),                                 // TTEHEH
	0x067B: dual(0xFB52),                                 // BEEH
	0x067E: dual(0xFB56),                                 // PEH
	0x067F: dual(0xFB62),                                 // TEHEH
	0x0680: dual(0xFB5A),                                 // BEHEH
	0x0683: dual(0xFB76),                                 // NYEH
	0x0684: dual(0xFB72),                                 // DYEH
	0x0686: dual(0xFB7A),                                 // TCHEH
	0x0687: dual(0xFB7E),                                 // TCHEHEH
	0x0688: right(0xFB88),                                // DDAL
	0x068C: right(0xFB84),                                // DAHAL
	0x068D: right(0xFB82),                                // DDAHAL
	0x068E: right(0xFB86),                                // DUL
	0x0691: right(0xFB8C),                                // RREH
	0x0698: right(0xFB8A),                                // JEH
	0x06A4: dual(0xFB6A),                                 // VEH
	0x06A6: dual(0xFB6E),                                 // PEHEH
	0x06A9: dual(0xFB8E),                                 // KEHEH
	0x06AD: dual(0xFBD3),                                 // NG
	0x06AF: dual(0xFB92),                                 // GAF
	0x06B1: dual(0xFB9A),                                 // NGOEH
	0x06B3: dual(0xFB96),                                 // GUEH
	0x06BA: right(0xFB9E),                                // NOON GHUNNA
	0x06BB: dual(0xFBA0),                                 // RNOON
	0x06BE: dual(0xFBAA),                                 // HEH DOACHASHMEE
	0x06C0: right(0xFBA4),                                // HEH WITH YEH ABOVE
	0x06C1: dual(0xFBA6),                                 // HEH GOAL
	0x06C5: right(0xFBE0),                                // KIRGHIZ OE
	0x06C6: right(0xFBD9),                                // OE
	0x06C7: right(0xFBD7),                                // U
	0x06C8: right(0xFBDB),                                // YU
	0x06C9: right(0xFBE2),                                // KIRGHIZ YU
	0x06CB: right(0xFBDE),                                // VE
	0x06CC: dual(0xFBFC),                                 // FARSI YEH
	0x06D0: dual(0xFBE4),                                 // E
	0x06D2: right(0xFBAE),                                // YEH BARREE
	0x06D3: right(0xFBB0),                                // YEH BARREE WITH HAMZA ABOVE
}

// Lam-Alef ligatures, isolated form. The final form follows at +1.
var lamAlefTable = map[rune]rune{
	0x0622: 0xFEF5,
	0x0623: 0xFEF7,
	0x0625: 0xFEF9,
	0x0627: 0xFEFB,
}

// Shadda + Dammatan … Kasra
const (
	shaddaFirst = rune(0x064C)
	shaddaLast  = rune(0x0650)
	shaddaForms = rune(0xFC5E)
)

// IsAlef is true for the Alef letters which ligate with a preceding Lam.
func IsAlef(r rune) bool {
	_, ok := lamAlefTable[r]
	return ok
}

// IsLamAlef is true if prev and cur form a Lam-Alef ligature.
func IsLamAlef(prev, cur rune) bool {
	return prev == Lam && IsAlef(cur)
}

// Joining returns the joining type of a code-point.
func Joining(r rune) JoiningType {
	if f, ok := formTable[r]; ok {
		return f.joining
	}
	if isTransparent(r) {
		return Transparent
	}
	return NonJoining
}

func isTransparent(r rune) bool {
	switch {
	case r >= 0x0610 && r <= 0x061A,
		r >= 0x064B && r <= 0x065F,
		r == 0x0670,
		r >= 0x06D6 && r <= 0x06DC,
		r >= 0x06DF && r <= 0x06E4,
		r >= 0x06E7 && r <= 0x06E8,
		r >= 0x06EA && r <= 0x06ED:
		return true
	}
	return false
}

// Forms returns the isolated, final, initial and medial forms of a letter.
// ok is false for code-points without presentation forms.
func Forms(r rune) (isolated, final, initial, medial rune, ok bool) {
	f, ok := formTable[r]
	if !ok {
		return r, r, r, r, false
	}
	return f.isolated, f.final, f.initial, f.medial, true
}

// kind is the role of a letter for form selection.
type kind uint8

const (
	kindNone kind = iota // does not join to the left, or no letter at all
	kindAlef             // Alef letters, which ligate with Lam
	kindRight            // other right-joining letters
	kindDual             // dual-joining and join-causing letters
)

func kindOf(r rune) kind {
	f, ok := formTable[r]
	if !ok {
		return kindNone
	}
	switch f.joining {
	case RightJoining:
		if IsAlef(r) {
			return kindAlef
		}
		return kindRight
	case DualJoining, JoinCausing:
		return kindDual
	}
	return kindNone
}

// FormChar returns the presentation form of cur, given its logical
// neighbours prev and next. Clients pass NoChar for a missing neighbour.
// Transparent marks between letters should be skipped by the caller.
//
// A Lam followed by an Alef resolves to the Lam-Alef ligature, and the Alef
// following a Lam resolves to NoChar, i.e. it is consumed by the ligature.
// Code-points which are not joining Arabic letters are returned unchanged.
func FormChar(cur, prev, next rune) rune {
	ck := kindOf(cur)
	if ck == kindNone {
		return cur
	}
	if prev == Lam && ck == kindAlef {
		return NoChar
	}
	f := formTable[cur]
	pk, nk := kindOf(prev), kindOf(next)
	lamAlef := cur == Lam && nk == kindAlef
	switch {
	case pk == kindNone:
		if lamAlef {
			return lamAlefTable[next]
		}
		if nk == kindNone {
			return f.isolated
		}
		return f.initial
	case lamAlef:
		if pk == kindDual {
			return lamAlefTable[next] + 1
		}
		return lamAlefTable[next]
	case pk == kindAlef || pk == kindRight:
		if nk == kindNone {
			return f.isolated
		}
		return f.initial
	}
	if nk == kindNone {
		return f.final
	}
	return f.medial
}

// ShaddaForm returns the precomposed form of a Shadda combined with one of
// the vowel marks Dammatan, Kasratan, Fatha, Damma or Kasra.
func ShaddaForm(vowel rune) (rune, bool) {
	if vowel < shaddaFirst || vowel > shaddaLast {
		return vowel, false
	}
	return shaddaForms + vowel - shaddaFirst, true
}

// ShaddaCompose checks if two adjacent marks compose into a precomposed
// Shadda form, in either order.
func ShaddaCompose(first, second rune) (rune, bool) {
	if first == Shadda {
		return ShaddaForm(second)
	}
	if second == Shadda {
		return ShaddaForm(first)
	}
	return 0, false
}
