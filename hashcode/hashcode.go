package hashcode

import (
	"net/url"
	"strings"
)

// EncodeAnswers renders answers as a compact string: true maps to 'a',
// false to 'b', in order.
func EncodeAnswers(answers []bool) string {
	var b strings.Builder
	b.Grow(len(answers))
	for _, answer := range answers {
		if answer {
			b.WriteByte('a')
		} else {
			b.WriteByte('b')
		}
	}
	return b.String()
}

// DecodeAnswers parses a compact answer string, ignoring every byte other
// than 'a'/'b' (case-sensitive, matching EncodeAnswers' own output).
// Decoding never fails; an empty or fully-noise input decodes to nil.
func DecodeAnswers(s string) []bool {
	var answers []bool
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'a':
			answers = append(answers, true)
		case 'b':
			answers = append(answers, false)
		}
	}
	return answers
}

// EncodeState renders the full URL-hash format: a comma-separated,
// percent-encoded item list, a '!' separator, and the encoded answers. The
// separator is omitted when answers is empty. An empty items list still
// renders as "" followed directly by the answer suffix (no leading comma).
func EncodeState(items []string, answers []bool) string {
	encodedItems := make([]string, len(items))
	for i, item := range items {
		encodedItems[i] = url.QueryEscape(item)
	}

	var b strings.Builder
	b.WriteString(strings.Join(encodedItems, ","))
	if len(answers) > 0 {
		b.WriteByte('!')
		b.WriteString(EncodeAnswers(answers))
	}
	return b.String()
}

// DecodeState parses the full URL-hash format produced by EncodeState. An
// empty string decodes to (nil, nil). Items are split on the first '!'
// (answers may never legitimately contain one, since encoded answers are
// only 'a'/'b', but splitting on the first occurrence keeps behavior
// defined even if the input was hand-edited); everything after it is
// decoded as an answer sequence via DecodeAnswers. A hash with no '!' at
// all is treated as items-only, with no answers yet.
func DecodeState(s string) (items []string, answers []bool) {
	if s == "" {
		return nil, nil
	}

	itemPart, answerPart, hasAnswers := strings.Cut(s, "!")

	if itemPart != "" {
		rawItems := strings.Split(itemPart, ",")
		items = make([]string, len(rawItems))
		for i, raw := range rawItems {
			decoded, err := url.QueryUnescape(raw)
			if err != nil {
				// Malformed percent-encoding is ignored-on-read noise,
				// per this package's total-decode contract: fall back to
				// the raw, undecoded text rather than failing.
				decoded = raw
			}
			items[i] = decoded
		}
	}

	if hasAnswers {
		answers = DecodeAnswers(answerPart)
	}

	return items, answers
}
