// Package pose maps letters to semaphore arm positions.
package pose

// Codes range from 0 (arm not drawn) to MaxCode.
const MaxCode = 7

// Arms holds the position codes of both arms for one letter.
type Arms struct {
	Right uint8
	Left  uint8
}

//                              a  b  c  d  e  f  g  h  i
//                              j  k  l  m  n  o  p  q  r
//                              s  t  u  v  w  x  y  z
var rightArm = [26]uint8{1, 2, 3, 4, 0, 0, 0, 1, 1,
	4, 1, 1, 1, 1, 2, 2, 2, 2,
	2, 3, 3, 4, 5, 5, 3, 6}

var leftArm = [26]uint8{0, 0, 0, 0, 5, 6, 7, 2, 3,
	6, 4, 5, 6, 7, 3, 4, 5, 6,
	7, 4, 5, 7, 6, 7, 6, 7}

// Index returns the table slot of r: 0-25 for ASCII letters of either case,
// 0 for anything else. Digits have no poses of their own and share "a".
func Index(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	}
	return 0
}

// Lookup returns the arm codes for r.
func Lookup(r rune) Arms {
	i := Index(r)
	return Arms{Right: rightArm[i], Left: leftArm[i]}
}
