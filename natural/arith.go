package natural

import "fmt"

// digits holds the base-10 digits of a natural number, least significant first:
//
//	x = x[n-1]*10^(n-1) + ... + x[1]*10 + x[0]
//
// A normalized value has no trailing (most significant) zero digits. Zero is the empty slice.
type digits []byte

func (z digits) norm() digits {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func (x digits) cmp(y digits) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func add(x, y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(digits, len(x)+1)
	var carry byte
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i], carry = s%Radix, s/Radix
	}
	z[len(x)] = carry
	return z.norm()
}

// subFrom computes x - y into x and returns the normalized result. x must be >= y.
func subFrom(x, y digits) digits {
	var borrow byte
	for i := range x {
		sub := borrow
		if i < len(y) {
			sub += y[i]
		}
		if x[i] >= sub {
			x[i], borrow = x[i]-sub, 0
		} else {
			x[i], borrow = x[i]+Radix-sub, 1
		}
	}
	if borrow != 0 {
		panic("natural: subtraction underflow")
	}
	return x.norm()
}

func mul(x, y digits) digits {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	acc := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		for j, yj := range y {
			acc[i+j] += uint64(xi) * uint64(yj)
		}
	}

	z := make(digits, len(acc))
	var carry uint64
	for i, a := range acc {
		a += carry
		z[i], carry = byte(a%Radix), a/Radix
	}
	return z.norm()
}

// divmod computes the quotient and remainder of x / y using schoolbook long division. y must be non-zero.
func divmod(x, y digits) (q, r digits) {
	q = make(digits, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		// r = r*10 + x[i]
		r = append(r, 0)
		copy(r[1:], r)
		r[0] = x[i]
		r = r.norm()

		var d byte
		for r.cmp(y) >= 0 {
			r = subFrom(r, y)
			d++
		}
		q[i] = d
	}
	return q.norm(), r.norm()
}

// x.PopDigit() removes the lowest digit from x and returns it, i.e. x = x / 10 and the result is x mod 10.
// PopDigit on zero returns 0 and leaves x at zero.
func (x *nat) PopDigit() int {
	if len(x.d) == 0 {
		return 0
	}
	d := x.d[0]
	copy(x.d, x.d[1:])
	x.d = x.d[:len(x.d)-1]
	return int(d)
}

// x.PushDigit(d) appends d as the new lowest digit, i.e. x = 10 * x + d. It is the inverse of PopDigit.
// Panics unless 0 <= d < Radix.
func (x *nat) PushDigit(d int) Nat {
	if d < 0 || d >= Radix {
		panic(fmt.Sprintf("natural: digit %d out of range [0, %d)", d, Radix))
	}
	if len(x.d) == 0 && d == 0 {
		return x
	}
	x.d = append(x.d, 0)
	copy(x.d[1:], x.d)
	x.d[0] = byte(d)
	return x
}

func (x *nat) Increment() Nat {
	for i := range x.d {
		if x.d[i] < Radix-1 {
			x.d[i]++
			return x
		}
		x.d[i] = 0
	}
	x.d = append(x.d, 1)
	return x
}

// Decrement computes x = x - 1. Panics if x is zero.
func (x *nat) Decrement() Nat {
	if x.IsZero() {
		panic("natural: decrement of zero")
	}
	for i := range x.d {
		if x.d[i] > 0 {
			x.d[i]--
			break
		}
		x.d[i] = Radix - 1
	}
	x.d = x.d.norm()
	return x
}

// x.Add(y) computes x = x + y, and returns x.
func (x *nat) Add(y Nat) Nat {
	x.d = add(x.d, y.d)
	return x
}

// x.Subtract(y) computes x = x - y, and returns x.
// Panics if y > x; the result of a subtraction must remain a natural number.
func (x *nat) Subtract(y Nat) Nat {
	if x.d.cmp(y.d) < 0 {
		panic(fmt.Sprintf("natural: subtraction underflow: %s - %s", x, y))
	}
	x.d = subFrom(x.d, y.d)
	return x
}

// x.Multiply(y) computes x = x * y, and returns x.
func (x *nat) Multiply(y Nat) Nat {
	x.d = mul(x.d, y.d)
	return x
}

// x.Divide(y) sets x to the quotient x / y and returns the remainder x mod y as a new Nat.
// Returns ErrDivisionByZero, leaving x unchanged, if y is zero.
func (x *nat) Divide(y Nat) (Nat, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q, r := divmod(x.d, y.d)
	x.d = q
	return &nat{r}, nil
}

// x.Mod(y) computes x = x mod y, and returns x.
// Returns ErrDivisionByZero, leaving x unchanged, if y is zero.
func (x *nat) Mod(y Nat) (Nat, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	_, x.d = divmod(x.d, y.d)
	return x, nil
}

// x.Power(p) computes x = x^p by repeated squaring, and returns x. 0^0 is 1.
// Panics if p is negative.
func (x *nat) Power(p int) Nat {
	if p < 0 {
		panic(fmt.Sprintf("natural: negative exponent %d", p))
	}
	base := x.d
	result := digits{1}
	for p > 0 {
		if p&1 == 1 {
			result = mul(result, base)
		}
		p >>= 1
		if p > 0 {
			base = mul(base, base)
		}
	}
	x.d = result
	return x
}
