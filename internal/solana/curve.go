package solana

import "math/big"

// Edwards25519 curve constants, used only to decide whether a candidate
// 32-byte PDA hash happens to land on the curve (it must not). -x^2 + y^2 =
// 1 + d*x^2*y^2 (mod p), p = 2^255 - 19.
var (
	curveP = func() *big.Int {
		p := new(big.Int).Lsh(big.NewInt(1), 255)
		p.Sub(p, big.NewInt(19))
		return p
	}()

	// d = -121665/121666 mod p
	curveD = func() *big.Int {
		num := big.NewInt(-121665)
		den := big.NewInt(121666)
		denInv := new(big.Int).ModInverse(den, curveP)
		d := new(big.Int).Mul(num, denInv)
		return d.Mod(d, curveP)
	}()

	// sqrtM1 = sqrt(-1) mod p, used in the p ≡ 5 (mod 8) square-root recipe.
	sqrtM1 = func() *big.Int {
		// sqrt(-1) = 2^((p-1)/4) mod p
		exp := new(big.Int).Sub(curveP, big.NewInt(1))
		exp.Div(exp, big.NewInt(4))
		return new(big.Int).Exp(big.NewInt(2), exp, curveP)
	}()
)

func fieldPrime() *big.Int { return curveP }

// beOrLEToBigIntLE interprets b as a little-endian integer, which is how
// edwards25519 field elements are encoded.
func beOrLEToBigIntLE(b []byte) *big.Int {
	n := len(b)
	rev := make([]byte, n)
	for i := 0; i < n; i++ {
		rev[i] = b[n-1-i]
	}
	return new(big.Int).SetBytes(rev)
}

// recoverXExists reports whether there exists a valid x (mod p) such that
// (x, y) lies on the edwards25519 curve, for the given little-endian-packed
// y-coordinate bytes (sign bit already cleared by the caller).
func recoverXExists(yBytes []byte) bool {
	y := beOrLEToBigIntLE(yBytes)
	if y.Cmp(curveP) >= 0 {
		return false
	}

	ySq := new(big.Int).Mul(y, y)
	ySq.Mod(ySq, curveP)

	u := new(big.Int).Sub(ySq, big.NewInt(1))
	u.Mod(u, curveP)

	v := new(big.Int).Mul(curveD, ySq)
	v.Add(v, big.NewInt(1))
	v.Mod(v, curveP)

	if v.Sign() == 0 {
		return false
	}

	vInv := new(big.Int).ModInverse(v, curveP)
	if vInv == nil {
		return false
	}

	xSq := new(big.Int).Mul(u, vInv)
	xSq.Mod(xSq, curveP)

	// p ≡ 5 (mod 8): candidate root is xSq^((p+3)/8).
	exp := new(big.Int).Add(curveP, big.NewInt(3))
	exp.Div(exp, big.NewInt(8))
	x := new(big.Int).Exp(xSq, exp, curveP)

	check := new(big.Int).Mul(x, x)
	check.Mod(check, curveP)

	if check.Cmp(xSq) == 0 {
		return true
	}

	// Try x * sqrt(-1).
	x2 := new(big.Int).Mul(x, sqrtM1)
	x2.Mod(x2, curveP)

	check2 := new(big.Int).Mul(x2, x2)
	check2.Mod(check2, curveP)

	return check2.Cmp(xSq) == 0
}
