package maths

import "math"

// Complex 复数值，用于表示相量或交流阻抗/导纳
// 一经构造不可变，所有运算返回新值，按值传递
type Complex struct {
	Real float64 // 实部
	Imag float64 // 虚部
}

// NewComplex 由实部与虚部构造复数
// 不做校验，NaN/Inf 按 IEEE-754 语义原样传递
func NewComplex(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// FromPolar 由幅值与相角(rad)构造复数
func FromPolar(mag, phase float64) Complex {
	return Complex{Real: mag * math.Cos(phase), Imag: mag * math.Sin(phase)}
}

// Add 复数加法（逐分量相加）
func (z Complex) Add(w Complex) Complex {
	return Complex{Real: z.Real + w.Real, Imag: z.Imag + w.Imag}
}

// Sub 复数减法
func (z Complex) Sub(w Complex) Complex {
	return Complex{Real: z.Real - w.Real, Imag: z.Imag - w.Imag}
}

// Mul 复数乘法
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Real: z.Real*w.Real - z.Imag*w.Imag,
		Imag: z.Real*w.Imag + z.Imag*w.Real,
	}
}

// Div 复数除法
// 除数为零时遵循 IEEE-754 语义，结果为 Inf/NaN
func (z Complex) Div(w Complex) Complex {
	d := w.Real*w.Real + w.Imag*w.Imag
	return Complex{
		Real: (z.Real*w.Real + z.Imag*w.Imag) / d,
		Imag: (z.Imag*w.Real - z.Real*w.Imag) / d,
	}
}

// Conj 共轭复数
func (z Complex) Conj() Complex {
	return Complex{Real: z.Real, Imag: -z.Imag}
}

// Scale 标量缩放
func (z Complex) Scale(k float64) Complex {
	return Complex{Real: z.Real * k, Imag: z.Imag * k}
}

// Magnitude 幅值 sqrt(re²+im²)，恒为非负，零值返回 0
func (z Complex) Magnitude() float64 {
	return math.Hypot(z.Real, z.Imag)
}

// Phase 相角(rad)，采用 atan2 语义
// 实部为零时返回 ±π/2，原点返回 0（与 atan2(0,0)=0 一致）
func (z Complex) Phase() float64 {
	return math.Atan2(z.Imag, z.Real)
}

// PhaseDeg 相角(°)
func (z Complex) PhaseDeg() float64 {
	return RadToDeg(z.Phase())
}

// C 转换为内建 complex128，便于与 math/cmplx 互操作
func (z Complex) C() complex128 {
	return complex(z.Real, z.Imag)
}

// RadToDeg 弧度转角度
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
