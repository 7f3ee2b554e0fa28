// Package threephase 三相系统公式
// 线电压/线电流为 line 量，相电压/相电流为 phase 量，功率因数 pf 无量纲
package threephase

import "elec/maths"

// PowerStar 星形接法三相有功功率 P = √3·VL·IL·pf (W)
// 公式只依赖线量，三角形接法下同样成立
func PowerStar(vLine, iLine, pf float64) float64 {
	return maths.Sqrt3 * vLine * iLine * pf
}

// PowerDelta 三角形接法三相有功功率，与 PowerStar 同式
// 单独命名以便调用处表达接法意图
func PowerDelta(vLine, iLine, pf float64) float64 {
	return PowerStar(vLine, iLine, pf)
}

// ApparentPower 三相视在功率 S = √3·VL·IL (VA)
func ApparentPower(vLine, iLine float64) float64 {
	return maths.Sqrt3 * vLine * iLine
}

// LineToPhaseVoltageStar 星形接法线电压转相电压 Vp = VL/√3
func LineToPhaseVoltageStar(vLine float64) float64 {
	return vLine / maths.Sqrt3
}

// PhaseToLineVoltageStar 星形接法相电压转线电压 VL = Vp·√3
func PhaseToLineVoltageStar(vPhase float64) float64 {
	return vPhase * maths.Sqrt3
}

// LineToPhaseCurrentDelta 三角形接法线电流转相电流 Ip = IL/√3
func LineToPhaseCurrentDelta(iLine float64) float64 {
	return iLine / maths.Sqrt3
}

// PhaseToLineCurrentDelta 三角形接法相电流转线电流 IL = Ip·√3
func PhaseToLineCurrentDelta(iPhase float64) float64 {
	return iPhase * maths.Sqrt3
}

// ShortCircuitCurrent 短路电流幅值 Isc = V/|Z| (A)
// zTotal 为系统到故障点的总阻抗幅值
func ShortCircuitCurrent(vSource, zTotal float64) float64 {
	return vSource / zTotal
}

// ShortCircuitCurrentComplex 用复阻抗求短路电流相量 I = V/Z
// 电压取参考相位（纯实数）
func ShortCircuitCurrentComplex(vSource float64, zTotal maths.Complex) maths.Complex {
	return maths.NewComplex(vSource, 0).Div(zTotal)
}
