// Package motor 电机公式
// 转速单位 RPM 或 rad/s（按函数注明），频率 Hz，功率 W，转矩 N·m
package motor

import "elec/maths"

// SynchronousSpeed 同步转速 Ns = 60·f/p (RPM)
//
//	f: 电源频率(Hz) polePairs: 极对数
func SynchronousSpeed(f float64, polePairs int) float64 {
	return 60 * f / float64(polePairs)
}

// Slip 转差率 s = (Ns-N)/Ns
//
//	ns: 同步转速(RPM) n: 实际转速(RPM)
func Slip(ns, n float64) float64 {
	return (ns - n) / ns
}

// InductionSpeed 感应电机实际转速 N = Ns·(1-s) (RPM)
func InductionSpeed(ns, s float64) float64 {
	return ns * (1 - s)
}

// Torque 转矩 T = P/ω (N·m)
//
//	p: 机械功率(W) omega: 角速度(rad/s)
func Torque(p, omega float64) float64 { return p / omega }

// Efficiency 效率 η = Pout/Pin
func Efficiency(pOut, pIn float64) float64 { return pOut / pIn }

// InputPower 由输出功率与效率求输入功率 Pin = Pout/η (W)
func InputPower(pOut, eff float64) float64 { return pOut / eff }

// OutputPower 由输入功率与效率求输出功率 Pout = Pin·η (W)
func OutputPower(pIn, eff float64) float64 { return pIn * eff }

// RPMToRad 转速换算 RPM → rad/s
func RPMToRad(rpm float64) float64 {
	return rpm * maths.TwoPi / 60
}

// RadToRPM 转速换算 rad/s → RPM
func RadToRPM(omega float64) float64 {
	return omega * 60 / maths.TwoPi
}
