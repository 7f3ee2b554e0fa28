// Package power 电力系统公式
// 电压 V、电流 A、功率 W/VA/var，相位角 phi 单位为弧度
package power

import "math"

// ApparentPower 视在功率 S = V·I (VA)
func ApparentPower(v, i float64) float64 { return v * i }

// ActivePower 有功功率 P = V·I·cos(φ) (W)
func ActivePower(v, i, phi float64) float64 {
	return v * i * math.Cos(phi)
}

// ReactivePower 无功功率 Q = V·I·sin(φ) (var)
func ReactivePower(v, i, phi float64) float64 {
	return v * i * math.Sin(phi)
}

// PowerFactor 功率因数 PF = P/S
// 物理有效输入下结果在 [-1,1] 内，但不做钳位
func PowerFactor(p, s float64) float64 { return p / s }

// PowerFactorAngle 功率因数角 φ = arccos(PF) (rad)
// PF 超出 [-1,1] 时返回 NaN，不做保护
func PowerFactorAngle(pf float64) float64 { return math.Acos(pf) }

// PowerTriangleReactive 由功率三角形求无功功率 Q = sqrt(S²-P²) (var)
func PowerTriangleReactive(s, p float64) float64 {
	return math.Sqrt(s*s - p*p)
}
