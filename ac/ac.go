// Package ac 交流电路公式
// 频率单位 Hz，角频率单位 rad/s，电感 H，电容 F，电阻/电抗/阻抗 Ω
package ac

import (
	"math"

	"elec/maths"
)

// AngularFrequency 角频率 ω = 2πf (rad/s)
func AngularFrequency(f float64) float64 { return maths.TwoPi * f }

// Frequency 由角频率求频率 f = ω/2π (Hz)
func Frequency(omega float64) float64 { return omega / maths.TwoPi }

// Period 周期 T = 1/f (s)
func Period(f float64) float64 { return 1 / f }

// InductiveReactance 感抗 XL = 2πf·L (Ω)
func InductiveReactance(f, l float64) float64 {
	return maths.TwoPi * f * l
}

// CapacitiveReactance 容抗 XC = 1/(2πf·C) (Ω)
// f 或 c 为零时按 IEEE-754 除零语义返回 Inf
func CapacitiveReactance(f, c float64) float64 {
	return 1 / (maths.TwoPi * f * c)
}

// ImpedanceRL 串联 RL 阻抗幅值 |Z| = sqrt(R²+XL²)
func ImpedanceRL(r, xl float64) float64 {
	return math.Hypot(r, xl)
}

// ImpedanceRC 串联 RC 阻抗幅值 |Z| = sqrt(R²+XC²)
func ImpedanceRC(r, xc float64) float64 {
	return math.Hypot(r, xc)
}

// ImpedanceRLC 串联 RLC 阻抗幅值 |Z| = sqrt(R²+(XL-XC)²)
func ImpedanceRLC(r, xl, xc float64) float64 {
	return math.Hypot(r, xl-xc)
}

// ComplexImpedanceRLC 串联 RLC 复阻抗 Z = R + j(XL-XC)
// 需要相角时使用复数形式，幅值计算使用 ImpedanceRLC
func ComplexImpedanceRLC(r, xl, xc float64) maths.Complex {
	return maths.NewComplex(r, xl-xc)
}

// PhaseAngle 阻抗相角 φ = atan2(X, R) (rad)
func PhaseAngle(r, x float64) float64 {
	return math.Atan2(x, r)
}

// ResonanceFrequency 谐振频率 f0 = 1/(2π·sqrt(L·C)) (Hz)
func ResonanceFrequency(l, c float64) float64 {
	return 1 / (maths.TwoPi * math.Sqrt(l*c))
}

// QualityFactorRLC 串联 RLC 品质因数 Q = (1/R)·sqrt(L/C)
// 等价于 ω0·L/R，调用方保证单位一致
func QualityFactorRLC(l, c, r float64) float64 {
	return math.Sqrt(l/c) / r
}

// Bandwidth 谐振带宽 B = f0/Q (Hz)
func Bandwidth(f0, q float64) float64 { return f0 / q }
