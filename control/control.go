// Package control 一阶控制系统与 RC/RL 暂态公式
// 时间 s，电阻 Ω，电容 F，电感 H
package control

import "math"

// TimeConstantRC 一阶 RC 时间常数 τ = R·C (s)
func TimeConstantRC(r, c float64) float64 { return r * c }

// TimeConstantRL 一阶 RL 时间常数 τ = L/R (s)
func TimeConstantRL(l, r float64) float64 { return l / r }

// StepResponse 一阶系统阶跃响应 y(t) = yf·(1 - e^(-t/τ))
func StepResponse(finalValue, t, tau float64) float64 {
	return finalValue * (1 - math.Exp(-t/tau))
}

// CapacitorChargingVoltage 电容充电电压 v(t) = V0·(1 - e^(-t/RC))
//
//	v0: 充电源电压(V)
func CapacitorChargingVoltage(v0, t, r, c float64) float64 {
	return v0 * (1 - math.Exp(-t/(r*c)))
}

// CapacitorDischargingVoltage 电容放电电压 v(t) = V0·e^(-t/RC)
func CapacitorDischargingVoltage(v0, t, r, c float64) float64 {
	return v0 * math.Exp(-t/(r*c))
}

// InductorCurrentRise 电感电流上升 i(t) = If·(1 - e^(-t·R/L))
func InductorCurrentRise(iFinal, t, l, r float64) float64 {
	return iFinal * (1 - math.Exp(-t/(l/r)))
}

// InductorCurrentDecay 电感电流衰减 i(t) = I0·e^(-t·R/L)
func InductorCurrentDecay(i0, t, l, r float64) float64 {
	return i0 * math.Exp(-t/(l/r))
}

// SettlingTime 到达稳态的近似时间 n·τ (s)
// 工程上常取 n=5（误差小于 1%）
func SettlingTime(tau float64, n int) float64 {
	return tau * float64(n)
}
