package codicefiscale

import "strings"

const vowels = "AEIOU"

// splitLetters buckets the uppercased input into consonants and vowels,
// preserving order. Anything outside A-Z, such as spaces, apostrophes or
// accented characters, is dropped.
func splitLetters(raw string) (cons, vows []byte) {
	for _, r := range strings.ToUpper(raw) {
		if r < 'A' || r > 'Z' {
			continue
		}
		b := byte(r)
		if strings.IndexByte(vowels, b) >= 0 {
			vows = append(vows, b)
		} else {
			cons = append(cons, b)
		}
	}
	return cons, vows
}

// surnameFragment maps a surname to its three-letter fragment: consonants
// first, then vowels, padded with X when the surname runs out of letters.
func surnameFragment(surname string) string {
	cons, vows := splitLetters(surname)
	return fragment(cons, vows)
}

// nameFragment maps a given name to its three-letter fragment. A name with
// four or more consonants contributes its first, third and fourth; otherwise
// the surname rule applies.
func nameFragment(name string) string {
	cons, vows := splitLetters(name)
	if len(cons) >= 4 {
		cons = []byte{cons[0], cons[2], cons[3]}
	}
	return fragment(cons, vows)
}

func fragment(cons, vows []byte) string {
	frag := make([]byte, 0, 3)
	frag = append(frag, cons...)
	if len(frag) > 3 {
		frag = frag[:3]
	}
	for _, v := range vows {
		if len(frag) == 3 {
			break
		}
		frag = append(frag, v)
	}
	for len(frag) < 3 {
		frag = append(frag, 'X')
	}
	return string(frag)
}
