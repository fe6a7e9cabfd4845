package codicefiscale

type checkWeights struct {
	odd  int
	even int
}

// checkWeightTable assigns every character that may appear in a code body
// its two registry-mandated weights. Positions are counted from one in the
// registry rules, so characters at even zero-based indexes use the odd
// weight. Digits carry the same weights as the first ten letters.
var checkWeightTable = map[byte]checkWeights{
	'A': {1, 0}, 'B': {0, 1}, 'C': {5, 2}, 'D': {7, 3}, 'E': {9, 4},
	'F': {13, 5}, 'G': {15, 6}, 'H': {17, 7}, 'I': {19, 8}, 'J': {21, 9},
	'K': {2, 10}, 'L': {4, 11}, 'M': {18, 12}, 'N': {20, 13}, 'O': {11, 14},
	'P': {3, 15}, 'Q': {6, 16}, 'R': {8, 17}, 'S': {12, 18}, 'T': {14, 19},
	'U': {16, 20}, 'V': {10, 21}, 'W': {22, 22}, 'X': {25, 23}, 'Y': {24, 24},
	'Z': {23, 25},
	'0': {1, 0}, '1': {0, 1}, '2': {5, 2}, '3': {7, 3}, '4': {9, 4},
	'5': {13, 5}, '6': {15, 6}, '7': {17, 7}, '8': {19, 8}, '9': {21, 9},
}

const checksumAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// checksum computes the check letter for a 15-character code body.
func checksum(body string) (byte, error) {
	sum := 0
	for i := 0; i < len(body); i++ {
		w, ok := checkWeightTable[body[i]]
		if !ok {
			return 0, newErrorf(CodeInvalidCheckChar, "character %q cannot appear in a code", body[i])
		}
		if i%2 == 0 {
			sum += w.odd
		} else {
			sum += w.even
		}
	}
	return checksumAlphabet[sum%26], nil
}

// checksumValid reports whether check is the correct check letter for body.
func checksumValid(body string, check byte) bool {
	want, err := checksum(body)
	return err == nil && want == check
}
