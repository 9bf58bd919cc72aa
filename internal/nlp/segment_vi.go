package nlp

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"

	"golang.org/x/text/unicode/norm"
)

//go:embed lexicon_vi.txt
var lexiconRaw []byte

// compoundJoiner links the syllables of a multi-syllable word in the output.
const compoundJoiner = "_"

// maxCompoundSyllables bounds the lookahead of the maximal-matching pass.
const maxCompoundSyllables = 4

var defaultLexicon = parseLexicon(lexiconRaw)

func parseLexicon(raw []byte) map[string]struct{} {
	lex := make(map[string]struct{})
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry := strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(line))), " ")
		if strings.Count(entry, " ")+1 > maxCompoundSyllables {
			continue
		}
		lex[entry] = struct{}{}
	}
	return lex
}

// VietnameseSegmenter joins adjacent syllables that form a known compound
// word, using forward maximal matching over a lexicon of multi-syllable words.
// Syllables of a compound are joined with "_" so later stages treat the
// compound as one token.
type VietnameseSegmenter struct {
	lexicon map[string]struct{}
}

// NewVietnameseSegmenter returns a segmenter backed by the embedded lexicon
// plus any extra compounds given (space-separated syllables).
func NewVietnameseSegmenter(extra ...string) *VietnameseSegmenter {
	lex := make(map[string]struct{}, len(defaultLexicon)+len(extra))
	for w := range defaultLexicon {
		lex[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.Join(strings.Fields(strings.ToLower(norm.NFC.String(w))), " ")
		if strings.Contains(w, " ") {
			lex[w] = struct{}{}
		}
	}
	return &VietnameseSegmenter{lexicon: lex}
}

// Segment returns the words of text, compounds joined by "_".
func (s *VietnameseSegmenter) Segment(text string) ([]string, error) {
	syllables := strings.Fields(text)
	words := make([]string, 0, len(syllables))

	for i := 0; i < len(syllables); {
		n := 1
		for l := min(maxCompoundSyllables, len(syllables)-i); l >= 2; l-- {
			if _, ok := s.lexicon[strings.Join(syllables[i:i+l], " ")]; ok {
				n = l
				break
			}
		}
		words = append(words, strings.Join(syllables[i:i+n], compoundJoiner))
		i += n
	}

	return words, nil
}
