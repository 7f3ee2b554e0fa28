// Package electronics 基础电子学公式（二极管、运放、滤波器）
package electronics

import (
	"math"

	"elec/maths"
)

// 二极管正向压降近似常数 (V)
// 查表近似值，不是二极管方程求解
const (
	SiliconForwardVoltage   = 0.7 // 硅管
	GermaniumForwardVoltage = 0.3 // 锗管
)

// DiodeForwardVoltage 二极管正向压降 (V)
// silicon 为 true 返回硅管常数，否则返回锗管常数
func DiodeForwardVoltage(silicon bool) float64 {
	if silicon {
		return SiliconForwardVoltage
	}
	return GermaniumForwardVoltage
}

// OpAmpInvertingGain 反相放大器增益 A = -Rf/Rin
func OpAmpInvertingGain(rf, rin float64) float64 {
	return -rf / rin
}

// OpAmpNonInvertingGain 同相放大器增益 A = 1 + Rf/Rin
func OpAmpNonInvertingGain(rf, rin float64) float64 {
	return 1 + rf/rin
}

// OpAmpOutput 理想运放输出 Vout = A·Vin（不含饱和限制）
func OpAmpOutput(gain, vin float64) float64 { return gain * vin }

// LowpassCutoffFrequency 一阶 RC 低通截止频率 fc = 1/(2πRC) (Hz)
func LowpassCutoffFrequency(r, c float64) float64 {
	return 1 / (maths.TwoPi * r * c)
}

// HighpassCutoffFrequency 一阶 RC 高通截止频率，与低通同式
func HighpassCutoffFrequency(r, c float64) float64 {
	return LowpassCutoffFrequency(r, c)
}

// BandpassCenterFrequency LC 带通中心频率 f0 = 1/(2π·sqrt(L·C)) (Hz)
func BandpassCenterFrequency(l, c float64) float64 {
	return 1 / (maths.TwoPi * math.Sqrt(l*c))
}
