package linebreak

import (
	"github.com/dillo-gui/dwcore/runmodel"
)

// ChannelLayout and ChannelExtremes select which of a BadnessAndPenalty's two penalty slots a
// caller cares about: extremes computation tolerates different breaks than
// final layout does (spec.md section 3).
const (
	ChannelLayout   = 0
	ChannelExtremes = 1
)

// stretchabilityFactor scales non-justified lines' line-level slack, per
// spec.md section 4.1 ("stretchabilityFactor * (ascent+descent) / 100").
const stretchabilityFactor = 50

// wordMetrics is the subset of run state the breaker needs regardless of
// variant, gathered once per run to keep the search loop allocation-free.
type wordMetrics struct {
	width, ascent, descent int
	spaceWidth             int
	spaceStretch           int
	spaceShrink            int
	breakable              bool // true if a break is admissible right after this run
	penalty                [2]runmodel.Penalty
	style                  runmodel.StyleRef
	hyphenCandidate        bool
}

func (m wordMetrics) isMandatoryBreak() bool {
	return m.penalty[ChannelLayout] == runmodel.ForceBreak
}

// LineBreaker lays a growing Run vector out into Lines, per spec.md section
// 4.1.
type LineBreaker struct {
	platform   Platform
	oof        OutOfFlowMgr
	hyphenator Hyphenator
	lang       string

	runs  []runmodel.Run
	words []wordMetrics // parallel to runs, computed as each run is added or split

	lines      []Line
	paragraphs []Paragraph
	cur        Paragraph

	lineStart   int // first run index of the in-progress line
	wrapRefLine int // rewrap() rebuilds from this line index onward

	top int // running y cursor for the next line
}

// NewLineBreaker creates a line breaker bound to a containing block's
// capabilities. hyphenator may be nil, disabling hyphenation entirely.
func NewLineBreaker(platform Platform, oof OutOfFlowMgr, hyphenator Hyphenator, lang string) *LineBreaker {
	if oof == nil {
		oof = NoFloats(1 << 20)
	}
	lb := &LineBreaker{platform: platform, oof: oof, hyphenator: hyphenator, lang: lang}
	lb.cur = Paragraph{FirstWord: 0, LastWord: -1}
	return lb
}

// AddRun appends a run to the stream and triggers processWord on it,
// matching the contract of spec.md's processWord(i).
func (lb *LineBreaker) AddRun(r runmodel.Run) {
	lb.runs = append(lb.runs, r)
	lb.words = append(lb.words, metricsOf(r))
	lb.ProcessWord(len(lb.runs) - 1)
}

func metricsOf(r runmodel.Run) wordMetrics {
	m := wordMetrics{width: r.Width(), ascent: r.Ascent(), descent: r.Descent()}
	switch v := r.(type) {
	case *runmodel.TextRun:
		m.style = v.Style
		m.spaceWidth = v.OrigSpace.Width
		m.spaceStretch = v.OrigSpace.Stretch
		m.spaceShrink = v.OrigSpace.Shrink
		m.breakable = v.OrigSpace.IsBreaking || v.Flags.Has(runmodel.WordEnd)
		m.hyphenCandidate = v.Flags.Has(runmodel.CanBeHyphenated)
		m.penalty = [2]runmodel.Penalty{0, 0}
	case *runmodel.BreakRun:
		m.breakable = true
		m.penalty = [2]runmodel.Penalty{runmodel.ForceBreak, runmodel.ForceBreak}
	case *runmodel.InlineWidgetRun:
		m.spaceWidth = v.OrigSpace.Width
		m.spaceStretch = v.OrigSpace.Stretch
		m.spaceShrink = v.OrigSpace.Shrink
		m.breakable = v.OrigSpace.IsBreaking
	case *runmodel.OofRefRun:
		m.breakable = false
		m.penalty = [2]runmodel.Penalty{runmodel.ProhibitBreak, runmodel.ProhibitBreak}
	}
	return m
}

// ProcessWord is called whenever run i is appended or its metrics changed.
// It triggers wordWrap and then recomputes extremes from the start of the
// current paragraph, which also covers any sub-words hyphenation inserted.
func (lb *LineBreaker) ProcessWord(i int) {
	lb.wordWrap()
	lb.recomputeExtremesFrom(lb.cur.FirstWord)
}

// idealWidth returns the border-corrected line-break width available at
// vertical position y for a line of the given height (spec.md's "Float
// interaction").
func (lb *LineBreaker) idealWidth(y, height int) (left, right, ideal int) {
	left = lb.oof.GetLeftBorder(y, height, lb.lineStart)
	right = lb.oof.GetRightBorder(y, height, lb.lineStart)
	width := lb.platform.GetWidthViewport()
	if right > 0 && right < width {
		width = right
	}
	ideal = width - left
	if ideal < 1 {
		ideal = 1
	}
	return left, right, ideal
}

// candidate is a break position under evaluation.
type candidate struct {
	pos int
	bp  runmodel.BadnessAndPenalty
}

// wordWrap searches for the best break in the current line's window,
// finalizing lines whenever the window overflows its ideal width or a
// mandatory break is reached. This is the line-local greedy search
// spec.md section 4.1 describes ("for each candidate break position b in
// [firstIndex, wordIndex] ... retain the smallest; ties resolve to the
// rightmost b").
func (lb *LineBreaker) wordWrap() {
	for {
		end := len(lb.runs) - 1
		if end < lb.lineStart {
			return
		}
		height := 1
		var best *candidate
		var ideal int
		hyphenated := false
		for iter := 0; iter < 8; iter++ {
			_, _, id := lb.idealWidth(lb.top, height)
			ideal = id
			b, overflowAt, mandatory := lb.searchWindow(lb.lineStart, end, ideal)
			best = b
			if !hyphenated && best != nil && (mandatory || overflowAt >= 0) {
				if lb.tryHyphenate(best) {
					hyphenated = true
					end = len(lb.runs) - 1
					continue
				}
			}
			newHeight := lb.lineHeight(lb.lineStart, pickEnd(best, overflowAt, end))
			if newHeight >= height {
				break
			}
			height = newHeight
			if mandatory {
				break
			}
		}
		if best == nil {
			if !lb.overflowed(lb.lineStart, end, ideal) {
				return // not enough input yet; wait for more runs
			}
			best = &candidate{pos: end, bp: lb.breakKeyAt(lb.lineStart, end, ideal)}
		}
		if !lb.overflowed(lb.lineStart, end, ideal) && !lb.words[end].isMandatoryBreak() {
			return // window not yet forced to resolve; keep accumulating
		}
		lb.commitLine(best.pos, ideal)
		if best.pos >= end {
			return
		}
	}
}

func pickEnd(best *candidate, overflowAt, end int) int {
	if best != nil {
		return best.pos
	}
	if overflowAt >= 0 {
		return overflowAt
	}
	return end
}

// searchWindow scans runs[start..end] and returns the best admissible
// break, the position at which the line first overflows ideal (-1 if it
// never does), and whether a mandatory break was encountered.
func (lb *LineBreaker) searchWindow(start, end, ideal int) (best *candidate, overflowAt int, mandatory bool) {
	overflowAt = -1
	width, stretch, shrink := 0, 0, 0
	maxAscDesc := 0
	for k := start; k <= end; k++ {
		m := lb.words[k]
		if k > start {
			width += lb.words[k-1].spaceWidth
		}
		width += m.width
		if m.ascent+m.descent > maxAscDesc {
			maxAscDesc = m.ascent + m.descent
		}
		if !m.breakable && k != end {
			continue
		}
		lineStretch, lineShrink := stretch, shrink
		if m.style != nil && m.style.Justify() {
			lineStretch += m.spaceStretch
			lineShrink += m.spaceShrink
		} else {
			lineStretch += stretchabilityFactor * maxAscDesc / 100
		}
		b := runmodel.ComputeBadness(width, ideal, lineStretch, lineShrink)
		bp := runmodel.BadnessAndPenalty{Badness: b, Penalty: m.penalty}
		if overflowAt < 0 && width > ideal {
			overflowAt = k
		}
		if best == nil || !runmodel.Less(best.bp, bp, ChannelLayout) {
			best = &candidate{pos: k, bp: bp}
		}
		if bp.IsMandatory(ChannelLayout) {
			mandatory = true
			return best, overflowAt, mandatory
		}
		stretch, shrink = stretch+m.spaceStretch, shrink+m.spaceShrink
	}
	return best, overflowAt, mandatory
}

func (lb *LineBreaker) overflowed(start, end, ideal int) bool {
	width := 0
	for k := start; k <= end; k++ {
		width += lb.words[k].width
		if k > start {
			width += lb.words[k-1].spaceWidth
		}
	}
	return width > ideal
}

func (lb *LineBreaker) breakKeyAt(start, end, ideal int) runmodel.BadnessAndPenalty {
	width, stretch, shrink := 0, 0, 0
	for k := start; k <= end; k++ {
		width += lb.words[k].width
		if k > start {
			width += lb.words[k-1].spaceWidth
		}
		stretch += lb.words[k].spaceStretch
		shrink += lb.words[k].spaceShrink
	}
	return runmodel.BadnessAndPenalty{Badness: runmodel.ComputeBadness(width, ideal, stretch, shrink), Penalty: lb.words[end].penalty}
}

// lineHeight is the max ascent+descent across runs[start..end], which
// drives the float-border query for the next convergence iteration.
func (lb *LineBreaker) lineHeight(start, end int) int {
	h := 1
	for k := start; k <= end && k < len(lb.words); k++ {
		if a := lb.words[k].ascent + lb.words[k].descent; a > h {
			h = a
		}
	}
	return h
}

// tryHyphenate implements spec.md's two-sided hyphenation trigger: if the
// chosen break is tight, hyphenate the last hyphenation-candidate word
// before it; if loose, hyphenate the first candidate word after it. It
// reports whether any run was actually split, in which case the caller
// must redo its search over the now-larger run vector.
func (lb *LineBreaker) tryHyphenate(best *candidate) bool {
	if lb.hyphenator == nil {
		return false
	}
	exactFit := best.bp.Badness.State == runmodel.Finite && best.bp.Badness.Magnitude == 0
	if exactFit {
		return false
	}
	tight := best.bp.Badness.State == runmodel.TooTight ||
		(best.bp.Badness.State == runmodel.Finite && best.bp.Badness.Tight)
	if tight {
		return lb.hyphenateWordEndingAt(best.pos) > 0
	}
	return lb.hyphenateWordStartingAfter(best.pos) > 0
}

func (lb *LineBreaker) hyphenateWordEndingAt(pos int) int {
	for k := pos; k >= lb.lineStart; k-- {
		if lb.words[k].hyphenCandidate {
			return lb.hyphenateRunAt(k)
		}
	}
	return 0
}

func (lb *LineBreaker) hyphenateWordStartingAfter(pos int) int {
	for k := pos + 1; k < len(lb.runs); k++ {
		if lb.words[k].hyphenCandidate {
			return lb.hyphenateRunAt(k)
		}
	}
	return 0
}

// hyphenateRunAt replaces runs[k] (a TextRun) with N+1 sub-word TextRuns,
// per spec.md section 4.1's hyphenation bullet, and returns the number of
// sub-words inserted (0 on failure) so callers can keep indices
// consistent.
func (lb *LineBreaker) hyphenateRunAt(k int) int {
	tr, ok := lb.runs[k].(*runmodel.TextRun)
	if !ok || lb.hyphenator == nil {
		return 0
	}
	word, err := tr.Bytes()
	if err != nil || len(word) == 0 {
		return 0
	}
	lang := lb.lang
	if tr.Style != nil && tr.Style.Language() != "" {
		lang = tr.Style.Language()
	}
	breaks := lb.hyphenator.Hyphenate(word, lang)
	if len(breaks) == 0 {
		return 0
	}
	subwords := make([]*runmodel.TextRun, 0, len(breaks)+1)
	prev := uint64(0)
	rest := tr
	for _, bpos := range breaks {
		left, right := rest.Split(uint64(bpos) - prev)
		left.Flags |= runmodel.DrawAsOneText | runmodel.DivCharAtEol | runmodel.UnbreakableForMinWidth
		left.Style = tr.Style
		subwords = append(subwords, left)
		prev = uint64(bpos)
		rest = right
	}
	rest.Style = tr.Style
	subwords = append(subwords, rest)
	subwords[0].Flags |= tr.Flags & runmodel.WordStart
	subwords[len(subwords)-1].Flags |= tr.Flags & runmodel.WordEnd

	newRuns := make([]runmodel.Run, 0, len(lb.runs)+len(subwords))
	newRuns = append(newRuns, lb.runs[:k]...)
	for _, sw := range subwords {
		newRuns = append(newRuns, sw)
	}
	newRuns = append(newRuns, lb.runs[k+1:]...)
	lb.runs = newRuns

	newWords := make([]wordMetrics, 0, len(lb.words)+len(subwords))
	newWords = append(newWords, lb.words[:k]...)
	for idx, sw := range subwords {
		m := metricsOf(sw)
		if lb.platform != nil {
			if b, err := sw.Bytes(); err == nil {
				m.width = lb.platform.TextWidth(nil, b)
			}
		}
		if idx < len(subwords)-1 {
			m.spaceWidth = tr.HyphenWidth
			m.breakable = true
		}
		newWords = append(newWords, m)
	}
	newWords = append(newWords, lb.words[k+1:]...)
	lb.words = newWords

	return len(subwords) - 1
}

// commitLine finalizes the line [lineStart, pos], applies justification or
// alignment, appends it to lb.lines, and advances lineStart/top.
func (lb *LineBreaker) commitLine(pos int, ideal int) {
	start := lb.lineStart
	align := runmodel.Left
	var style runmodel.StyleRef
	for k := start; k <= pos; k++ {
		if lb.words[k].style != nil {
			style = lb.words[k].style
			break
		}
	}
	justify := false
	if style != nil {
		align = style.Alignment()
		justify = style.Justify()
	}

	width, stretch, shrink := 0, 0, 0
	maxAsc, maxDesc := 0, 0
	for k := start; k <= pos; k++ {
		m := lb.words[k]
		width += m.width
		if k > start {
			width += lb.words[k-1].spaceWidth
		}
		if k < pos {
			stretch += m.spaceStretch
			shrink += m.spaceShrink
		}
		if m.ascent > maxAsc {
			maxAsc = m.ascent
		}
		if m.descent > maxDesc {
			maxDesc = m.descent
		}
	}
	isLast := pos >= len(lb.runs)-1
	if justify && !isLast && width <= ideal {
		width = lb.justifyLine(start, pos, ideal, stretch, shrink, width)
	} else {
		justify = false
	}

	left, right, _ := lb.idealWidth(lb.top, lb.lineHeight(start, pos))
	textOffset := left
	switch {
	case justify:
		textOffset = left
	case align == runmodel.Right:
		textOffset = ideal - width + left
	case align == runmodel.Center:
		textOffset = left + (ideal-width)/2
	}
	if textOffset < left {
		textOffset = left
	}

	line := Line{
		FirstWord:      start,
		LastWord:       pos,
		Alignment:      align,
		LeftOffset:     left,
		RightOffset:    right,
		TextOffset:     textOffset,
		BorderAscent:   maxAsc,
		BorderDescent:  maxDesc,
		MarginAscent:   maxAsc,
		MarginDescent:  maxDesc,
		ContentAscent:  maxAsc,
		ContentDescent: maxDesc,
		Top:            lb.top,
		MaxLineWidth:   width,
	}
	if len(lb.lines) > 0 && lb.lines[len(lb.lines)-1].MaxLineWidth > width {
		line.MaxLineWidth = lb.lines[len(lb.lines)-1].MaxLineWidth
	}
	if breakRun, ok := lb.runs[pos].(*runmodel.BreakRun); ok {
		line.BreakSpace = breakRun.BreakSpace
	}

	lb.lines = append(lb.lines, line)
	lb.top += maxAsc + maxDesc + line.BreakSpace
	lb.cur.LastWord = pos
	lb.lineStart = pos + 1
	if _, ok := lb.runs[pos].(*runmodel.BreakRun); ok {
		lb.paragraphs = append(lb.paragraphs, lb.cur)
		lb.cur.reset(pos + 1)
	}
}

// justifyLine distributes diff = ideal - width over spaces proportional to
// their stretchability (diff>0) or shrinkability (diff<0), using cumulative
// rounding to avoid drift (spec.md section 4.1).
func (lb *LineBreaker) justifyLine(start, pos, ideal, stretch, shrink, width int) int {
	diff := ideal - width
	if diff == 0 || (diff > 0 && stretch == 0) || (diff < 0 && shrink == 0) {
		return width
	}
	total := stretch
	if diff < 0 {
		total = shrink
	}
	applied := 0
	remainder := 0
	for k := start; k < pos; k++ {
		var capacity int
		if diff > 0 {
			capacity = lb.words[k].spaceStretch
		} else {
			capacity = lb.words[k].spaceShrink
		}
		num := diff*capacity + remainder
		share := num / total
		remainder = num - share*total
		applied += share
	}
	return width + applied
}

// Rewrap rebuilds all lines at index wrapRefLine or later from the
// unchanged run vector (spec.md's rewrap, used after viewport resize).
func (lb *LineBreaker) Rewrap() {
	if lb.wrapRefLine >= len(lb.lines) {
		return
	}
	firstRun := 0
	if lb.wrapRefLine > 0 {
		firstRun = lb.lines[lb.wrapRefLine-1].LastWord + 1
	}
	lb.lines = lb.lines[:lb.wrapRefLine]
	if len(lb.lines) > 0 {
		last := lb.lines[len(lb.lines)-1]
		lb.top = last.Top + last.MarginAscent + last.MarginDescent + last.BreakSpace
	} else {
		lb.top = 0
	}
	lb.lineStart = firstRun
	if len(lb.runs) == 0 {
		return
	}
	lb.wordWrap()
}

// SetRewrapFloor sets the line index from which the next Rewrap rebuilds,
// used when a containing block knows only the lines below a given index
// were affected by a geometry change.
func (lb *LineBreaker) SetRewrapFloor(lineIndex int) {
	lb.wrapRefLine = lineIndex
}

// ShowMissingLines finalizes lines up to the last run, inserting a
// temporary empty text run if the last real run is an OofRef, so the final
// line covers every run (spec.md's showMissingLines, invariant 1 in
// section 8).
func (lb *LineBreaker) ShowMissingLines() {
	if len(lb.runs) == 0 {
		return
	}
	if _, ok := lb.runs[len(lb.runs)-1].(*runmodel.OofRefRun); ok {
		empty := runmodel.NewTextRun(nil, 0, 0, nil, 0, 0, 0)
		empty.Flags |= runmodel.WordStart | runmodel.WordEnd
		lb.AddRun(empty)
	}
	if lb.lineStart <= len(lb.runs)-1 {
		_, _, ideal := lb.idealWidth(lb.top, 1)
		lb.commitLine(len(lb.runs)-1, ideal)
	}
}

// Lines returns the finalized line vector.
func (lb *LineBreaker) Lines() []Line { return lb.lines }

// Runs returns the run vector, including any hyphenation-inserted sub-words.
func (lb *LineBreaker) Runs() []runmodel.Run { return lb.runs }

func (lb *LineBreaker) recomputeExtremesFrom(firstWord int) {
	lb.cur.reset(firstWord)
	minW, maxW := 0, 0
	for k := firstWord; k < len(lb.runs); k++ {
		m := lb.words[k]
		w := m.width
		minW2 := w
		if m.hyphenCandidate {
			minW2 = 0 // a hyphenation candidate can shrink to near zero across breaks
		}
		minW += minW2
		maxW += w
		if k < len(lb.runs)-1 {
			maxW += m.spaceWidth
		}
	}
	lb.cur.accumulate(minW, minW, maxW, maxW)
}

// GetExtremes returns the (minWidth, maxWidth) of all paragraphs, plus
// intrinsic variants that ignore widget-induced lower bounds
// (spec.md's getExtremes).
func (lb *LineBreaker) GetExtremes() Extremes {
	min, max := lb.cur.MaxParMin, lb.cur.MaxParMax
	minI, maxI := lb.cur.ParMinIntrinsic, lb.cur.ParMaxIntrinsic
	for _, p := range lb.paragraphs {
		if p.MaxParMin > min {
			min = p.MaxParMin
		}
		if p.MaxParMax > max {
			max = p.MaxParMax
		}
		if p.ParMinIntrinsic > minI {
			minI = p.ParMinIntrinsic
		}
		if p.ParMaxIntrinsic > maxI {
			maxI = p.ParMaxIntrinsic
		}
	}
	return Extremes{MinWidth: min, MaxWidth: max, MinWidthIntrinsic: minI, MaxWidthIntrinsic: maxI}
}
