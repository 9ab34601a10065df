package bidi

// The line resolver is a compact, table driven variant of the UAX#9
// algorithm. It knows nothing about explicit embeddings: every line starts
// at paragraph level 0, explicit formatting characters are treated like
// boundary neutrals. What remains are the rules W1–W7 for weak types,
// N1–N2 for neutrals, I1–I2 for implicit levels, L1 for whitespace and
// L2 for reordering.
//
// Weak and neutral types are resolved by finite state machines. Each
// transition carries an action, which packs two classes into one value:
// the high nibble is the class to assign to a run of deferred characters
// preceding the current one, the low nibble is the class to assign to the
// current character. Flag ix requests the current character to be added
// to the deferred run.

type action uint16

const (
	ix   action = 0x100
	keep        = 0x0F // "no change" for weak actions
)

// weak actions
const (
	wxxx = action(keep<<4 | keep)
	wxIx = ix + wxxx
	wxxN = action(keep<<4) | action(ON)
	wxxE = action(keep<<4) | action(EN)
	wxxA = action(keep<<4) | action(AN)
	wxxR = action(keep<<4) | action(R)
	wxxL = action(keep<<4) | action(L)
	wNxx = action(ON)<<4 | keep
	wAxx = action(AN)<<4 | keep
	wExE = action(EN)<<4 | action(EN)
	wNIx = ix + action(ON)<<4 | keep
	wNxN = action(ON)<<4 | action(ON)
	wNxR = action(ON)<<4 | action(R)
	wNxE = action(ON)<<4 | action(EN)
	wAxA = action(AN)<<4 | action(AN)
	wNxL = action(ON)<<4 | action(L)
	wLxL = action(L)<<4 | action(L)
)

type weakState uint8

const (
	xa weakState = iota // arabic letter
	xr                  // right letter
	xl                  // left letter
	ao                  // arabic letter followed by ON
	ro                  // right letter followed by ON
	lo                  // left letter followed by ON
	rt                  // ET following R
	lt                  // ET following L
	cn                  // EN, AN following AL
	ra                  // arabic number following R
	re                  // european number following R
	la                  // arabic number following L
	le                  // european number following L
	ac                  // CS following cn
	rc                  // CS following ra
	rs                  // CS, ES following re
	lc                  // CS following la
	ls                  // CS, ES following le
	ret                 // ET following re
	let                 // ET following le
)

// weakStates[state][class] for classes ON … ET
var weakStates = [20][10]weakState{
	{ao, xl, xr, cn, cn, xa, xa, ao, ao, ao},
	{ro, xl, xr, ra, re, xa, xr, ro, ro, rt},
	{lo, xl, xr, la, le, xa, xl, lo, lo, lt},
	{ao, xl, xr, cn, cn, xa, ao, ao, ao, ao},
	{ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	{lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	{ro, xl, xr, ra, re, xa, rt, ro, ro, rt},
	{lo, xl, xr, la, le, xa, lt, lo, lo, lt},
	{ao, xl, xr, cn, cn, xa, cn, ac, ao, ao},
	{ro, xl, xr, ra, re, xa, ra, rc, ro, rt},
	{ro, xl, xr, ra, re, xa, re, rs, rs, ret},
	{lo, xl, xr, la, le, xa, la, lc, lo, lt},
	{lo, xl, xr, la, le, xa, le, ls, ls, let},
	{ao, xl, xr, cn, cn, xa, ao, ao, ao, ao},
	{ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	{ro, xl, xr, ra, re, xa, ro, ro, ro, rt},
	{lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	{lo, xl, xr, la, le, xa, lo, lo, lo, lt},
	{ro, xl, xr, ra, re, xa, ret, ro, ro, ret},
	{lo, xl, xr, la, le, xa, let, lo, lo, let},
}

var weakActions = [20][10]action{
	{wxxx, wxxx, wxxx, wxxx, wxxA, wxxR, wxxR, wxxN, wxxN, wxxN},
	{wxxx, wxxx, wxxx, wxxx, wxxE, wxxR, wxxR, wxxN, wxxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxL, wxxR, wxxL, wxxN, wxxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxA, wxxR, wxxN, wxxN, wxxN, wxxN},
	{wxxx, wxxx, wxxx, wxxx, wxxE, wxxR, wxxN, wxxN, wxxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxL, wxxR, wxxN, wxxN, wxxN, wxIx},
	{wNxx, wNxx, wNxx, wNxx, wExE, wNxR, wxIx, wNxN, wNxN, wxIx},
	{wNxx, wNxx, wNxx, wNxx, wLxL, wNxR, wxIx, wNxN, wNxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxA, wxxR, wxxA, wxIx, wxxN, wxxN},
	{wxxx, wxxx, wxxx, wxxx, wxxE, wxxR, wxxA, wxIx, wxxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxE, wxxR, wxxE, wxIx, wxIx, wxxE},
	{wxxx, wxxx, wxxx, wxxx, wxxL, wxxR, wxxA, wxIx, wxxN, wxIx},
	{wxxx, wxxx, wxxx, wxxx, wxxL, wxxR, wxxL, wxIx, wxIx, wxxL},
	{wNxx, wNxx, wNxx, wAxx, wAxA, wNxR, wNxN, wNxN, wNxN, wNxN},
	{wNxx, wNxx, wNxx, wAxx, wNxE, wNxR, wNxN, wNxN, wNxN, wNIx},
	{wNxx, wNxx, wNxx, wNxx, wExE, wNxR, wNxN, wNxN, wNxN, wNIx},
	{wNxx, wNxx, wNxx, wAxx, wNxL, wNxR, wNxN, wNxN, wNxN, wNIx},
	{wNxx, wNxx, wNxx, wNxx, wLxL, wNxR, wNxN, wNxN, wNxN, wNIx},
	{wxxx, wxxx, wxxx, wxxx, wxxE, wxxR, wxxE, wxxN, wxxN, wxxE},
	{wxxx, wxxx, wxxx, wxxx, wxxL, wxxR, wxxL, wxxN, wxxN, wxxL},
}

// neutral actions
const (
	nZero = action(0)
	nnL   = action(ON)<<4 | action(L)
	nEn   = action(AN) << 4
	nRn   = action(R) << 4
	nLn   = action(L) << 4
	nIn   = ix
	nLnL  = action(L)<<4 | action(L)
)

type neutralState uint8

const (
	nr  neutralState = iota // R and characters resolved to R
	nl                      // L and characters resolved to L
	nrn                     // N preceded by right
	nln                     // N preceded by left
	na                      // AN preceded by left
	nna                     // N preceded by a
)

// neutralStates[state][class] for classes ON … EN
var neutralStates = [6][5]neutralState{
	{nrn, nl, nr, nr, nr},
	{nln, nl, nr, na, nl},
	{nrn, nl, nr, nr, nr},
	{nln, nl, nr, na, nl},
	{nna, nl, nr, na, nl},
	{nna, nl, nr, na, nl},
}

var neutralActions = [6][5]action{
	{nIn, nZero, nZero, nZero, nZero},
	{nIn, nZero, nZero, nZero, nnL},
	{nIn, nEn, nRn, nRn, nRn},
	{nIn, nLn, nEn, nEn, nLnL},
	{nIn, nZero, nZero, nZero, nnL},
	{nIn, nEn, nRn, nRn, nEn},
}

// addLevel[odd][class-1] for classes L, R, AN, EN
var addLevel = [2][4]int8{
	{0, 1, 2, 2},
	{1, 0, 1, 1},
}

// neutralTypes folds the classes for weak type resolution.
var neutralTypes = [...]Class{
	ON, L, R, AN, EN, AL, NSM, CS, ES, ET, BN, BN, ON, B, RLO, RLE, LRO, LRE, PDF,
}

func direction(level int8) Class {
	if level&1 == 1 {
		return R
	}
	return L
}

func deferredClass(a action) Class {
	return Class((a >> 4) & 0x0F)
}

func resolvedClass(a action) Class {
	return Class(a & 0x0F)
}

func deferredNeutral(a action, level int8) Class {
	c := deferredClass(a)
	if c == AN {
		return direction(level)
	}
	return c
}

// --- Resolving a line ------------------------------------------------------

// ResolveLine resolves the embedding levels of a line of characters, given
// their bidi classes, and computes their visual order.
// levels[i] is the level of logical character i, order[i] is its position
// after reordering the line for display.
//
// A line consisting of a single character gets level 1 if the character is
// strong right-to-left, level 0 otherwise.
func ResolveLine(classes []Class) (levels []int8, order []int) {
	n := len(classes)
	levels = make([]int8, n)
	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return
	}
	if n == 1 {
		if DirectionOf(classes[0]) == Right {
			levels[0] = 1
		}
		return
	}
	ls := borrowScratch(n)
	defer ls.release()
	for i, c := range classes {
		ls.cls[i] = neutralTypes[c]
	}
	ls.resolveWeak()
	ls.resolveNeutrals()
	ls.resolveImplicit()
	copy(ls.cls, classes)
	ls.resolveWhitespace()
	ls.reorder()
	for v, i := range ls.idx {
		order[i] = v
		levels[i] = ls.lvl[v]
	}
	tracer().Debugf("bidi line levels = %v", levels)
	return
}

// ResolveString is a convenience function which classifies the runes of s
// and resolves them as a single line.
func ResolveString(s string) (levels []int8, order []int) {
	rs := []rune(s)
	cls := make([]Class, len(rs))
	for i, r := range rs {
		cls[i] = ClassOf(r)
	}
	return ResolveLine(cls)
}

// lineScratch holds the working arrays of the resolver. The level array
// is reordered together with the index array during reordering.
type lineScratch struct {
	cls []Class
	lvl []int8
	idx []int
}

func (ls *lineScratch) reset(n int) {
	if cap(ls.cls) < n {
		ls.cls = make([]Class, n)
		ls.lvl = make([]int8, n)
		ls.idx = make([]int, n)
	}
	ls.cls = ls.cls[:n]
	ls.lvl = ls.lvl[:n]
	ls.idx = ls.idx[:n]
	for i := 0; i < n; i++ {
		ls.lvl[i] = 0
		ls.idx[i] = i
	}
}

func setDeferredClass(cls []Class, start, count int, c Class) {
	for i := start; i > start-count; i-- {
		cls[i-1] = c
	}
}

func setDeferredLevel(lvl []int8, start, count int, level int8) {
	for i := start; i > start-count; i-- {
		lvl[i-1] = level
	}
}

func (ls *lineScratch) resolveWeak() {
	cls, lvl := ls.cls, ls.lvl
	last := len(cls) - 1
	levelCur := int8(0)
	state := xl
	num := 0
	i := 0
	for ; i <= last; i++ {
		c := cls[i]
		if c == BN {
			lvl[i] = levelCur
			if i == last && levelCur != 0 {
				c = direction(levelCur)
				cls[i] = c
			} else if i < last && cls[i+1] != BN && levelCur != lvl[i+1] {
				next := lvl[i+1]
				if next > levelCur {
					lvl[i] = next
				}
				c = direction(lvl[i])
				cls[i] = c
				levelCur = next
			} else {
				if num > 0 {
					num++
				}
				continue
			}
		}
		if c > BN {
			continue
		}
		a := weakActions[state][c]
		if run := deferredClass(a); run != keep && num > 0 {
			setDeferredClass(cls, i, num, run)
			num = 0
		}
		if res := resolvedClass(a); res != keep {
			cls[i] = res
		}
		if a&ix != 0 {
			num++
		}
		state = weakStates[state][c]
	}
	if num == 0 {
		return
	}
	if run := deferredClass(weakActions[state][direction(0)]); run != keep {
		setDeferredClass(cls, i, num, run)
	}
}

func (ls *lineScratch) resolveNeutrals() {
	cls, lvl := ls.cls, ls.lvl
	level := int8(0)
	state := nl
	num := 0
	i := 0
	for ; i < len(cls); i++ {
		c := cls[i]
		if c == BN {
			if num > 0 {
				num++
			}
			continue
		}
		if c >= AL {
			continue
		}
		a := neutralActions[state][c]
		if run := deferredNeutral(a, level); run != ON && num > 0 {
			setDeferredClass(cls, i, num, run)
			num = 0
		}
		if res := resolvedClass(a); res != ON {
			cls[i] = res
		}
		if a&ix != 0 {
			num++
		}
		state = neutralStates[state][c]
		level = lvl[i]
	}
	if num == 0 {
		return
	}
	if run := deferredNeutral(neutralActions[state][direction(level)], level); run != ON {
		setDeferredClass(cls, i, num, run)
	}
}

func (ls *lineScratch) resolveImplicit() {
	for i, c := range ls.cls {
		if c == BN || c <= ON || c >= AL {
			continue
		}
		ls.lvl[i] += addLevel[ls.lvl[i]&1][c-1]
	}
}

func (ls *lineScratch) resolveWhitespace() {
	cls, lvl := ls.cls, ls.lvl
	level := int8(0)
	num := 0
	i := 0
	for ; i < len(cls); i++ {
		switch cls[i] {
		case WS:
			num++
		case RLE, LRE, LRO, RLO, PDF, BN:
			lvl[i] = level
			num++
		case S, B:
			if num > 0 {
				setDeferredLevel(lvl, i, num, 0)
			}
			lvl[i] = 0
			num = 0
		default:
			num = 0
		}
		level = lvl[i]
	}
	if num > 0 {
		setDeferredLevel(lvl, i, num, 0)
	}
}

func (ls *lineScratch) reorder() {
	for i := 0; i < len(ls.lvl); {
		i += ls.reorderLevel(0, i, false)
	}
}

func (ls *lineScratch) reorderLevel(base int8, start int, reverse bool) int {
	reverse = reverse || base&1 == 1
	i := start
	for ; i < len(ls.lvl); i++ {
		level := ls.lvl[i]
		if level == base {
			continue
		}
		if level < base {
			break
		}
		i += ls.reorderLevel(base+1, i, reverse) - 1
	}
	num := i - start
	if reverse && num > 1 {
		for a, b := start, i-1; a < b; a, b = a+1, b-1 {
			ls.idx[a], ls.idx[b] = ls.idx[b], ls.idx[a]
			ls.lvl[a], ls.lvl[b] = ls.lvl[b], ls.lvl[a]
		}
	}
	return num
}
