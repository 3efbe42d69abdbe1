package text

import "golang.org/x/text/unicode/bidi"

// Segment is a contiguous run of text with a single reading direction.
type Segment struct {
	// Text is the run content.
	Text string

	// Start and End are byte offsets into the original string.
	Start, End int

	// Direction is the resolved reading direction of the run.
	Direction Direction
}

// SegmentParagraph splits a paragraph into direction runs using the
// Unicode bidi algorithm. base is the paragraph's default direction,
// applied when the text itself gives no strong hint.
//
// An empty string yields no segments.
func SegmentParagraph(text string, base Direction) []Segment {
	if text == "" {
		return nil
	}

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Segment{{Text: text, Start: 0, End: len(text), Direction: base}}
	}

	ordering, err := p.Order()
	if err != nil {
		return []Segment{{Text: text, Start: 0, End: len(text), Direction: base}}
	}

	runes := []rune(text)
	byteOffsets := computeByteOffsets(text, runes)

	segments := make([]Segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)

		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}

		// run.Pos returns rune indices, start and end inclusive.
		startRune, endRune := run.Pos()
		if startRune < 0 || endRune >= len(runes) {
			continue
		}
		startByte := byteOffsets[startRune]
		endByte := byteOffsets[endRune+1]

		segments = append(segments, Segment{
			Text:      text[startByte:endByte],
			Start:     startByte,
			End:       endByte,
			Direction: dir,
		})
	}

	return segments
}

// computeByteOffsets maps rune indices to byte offsets, with one extra
// trailing entry equal to len(text).
func computeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}
