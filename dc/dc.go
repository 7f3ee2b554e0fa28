// Package dc 直流电路公式
// 所有函数不做输入校验，除零遵循 IEEE-754 语义（结果为 Inf/NaN）
package dc

// OhmLawVoltage 欧姆定律求电压 V = I·R
//
//	i: 电流(A) r: 电阻(Ω)
func OhmLawVoltage(i, r float64) float64 { return i * r }

// OhmLawCurrent 欧姆定律求电流 I = V/R
// r 为零时返回 ±Inf/NaN，不报错
func OhmLawCurrent(v, r float64) float64 { return v / r }

// OhmLawResistance 欧姆定律求电阻 R = V/I
func OhmLawResistance(v, i float64) float64 { return v / i }

// PowerVI 功率 P = V·I
func PowerVI(v, i float64) float64 { return v * i }

// PowerCurrentResistance 功率 P = I²·R
func PowerCurrentResistance(i, r float64) float64 { return i * i * r }

// PowerVoltageResistance 功率 P = V²/R
func PowerVoltageResistance(v, r float64) float64 { return v * v / r }

// Conductance 电导 G = 1/R (S)
func Conductance(r float64) float64 { return 1 / r }

// ResistanceSeries 两电阻串联 R = R1+R2
func ResistanceSeries(r1, r2 float64) float64 { return r1 + r2 }

// ResistanceParallel 两电阻并联 R = R1·R2/(R1+R2)
// 调用方需避免 R1+R2 = 0，内部不做保护
func ResistanceParallel(r1, r2 float64) float64 {
	return r1 * r2 / (r1 + r2)
}

// ResistanceSeriesN 多电阻串联
func ResistanceSeriesN(rs ...float64) float64 {
	sum := 0.0
	for _, r := range rs {
		sum += r
	}
	return sum
}

// ResistanceParallelN 多电阻并联（电导相加后取倒数）
func ResistanceParallelN(rs ...float64) float64 {
	g := 0.0
	for _, r := range rs {
		g += 1 / r
	}
	return 1 / g
}

// VoltageDivider 分压公式 Vout = Vin·R2/(R1+R2)
func VoltageDivider(vin, r1, r2 float64) float64 {
	return vin * r2 / (r1 + r2)
}

// CurrentDivider 分流公式 I2 = Iin·R1/(R1+R2)
// 返回流经 R2 支路的电流
func CurrentDivider(iin, r1, r2 float64) float64 {
	return iin * r1 / (r1 + r2)
}
