// Package signal 信号处理公式（有效值与分贝转换）
package signal

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// 正弦波的波形常数
const (
	FormFactorSine  = 1.1107207345395915618 // 波形因数 π/(2√2)
	CrestFactorSine = math.Sqrt2            // 波峰因数 √2
)

// RMSSine 正弦波有效值 Vrms = Vpeak/√2
func RMSSine(peak float64) float64 { return peak / math.Sqrt2 }

// PeakToRMS 同 RMSSine，峰值转有效值
func PeakToRMS(peak float64) float64 { return RMSSine(peak) }

// RMSToPeak 有效值转峰值 Vpeak = Vrms·√2
func RMSToPeak(rms float64) float64 { return rms * math.Sqrt2 }

// AverageRectifiedSine 正弦波整流平均值 Vavg = 2·Vpeak/π
func AverageRectifiedSine(peak float64) float64 {
	return 2 * peak / math.Pi
}

// RMS 采样序列的真有效值 sqrt(Σx²/n)
// 空序列按除零语义返回 NaN
func RMS(samples []float64) float64 {
	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// DBToVoltageRatio 分贝转电压比 10^(dB/20)
func DBToVoltageRatio(db float64) float64 {
	return math.Pow(10, db/20)
}

// VoltageRatioToDB 电压比转分贝 20·log10(ratio)
// ratio <= 0 时返回 NaN/-Inf，不做保护
func VoltageRatioToDB(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}

// DBToPowerRatio 分贝转功率比 10^(dB/10)
func DBToPowerRatio(db float64) float64 {
	return math.Pow(10, db/10)
}

// PowerRatioToDB 功率比转分贝 10·log10(ratio)
func PowerRatioToDB(ratio float64) float64 {
	return 10 * math.Log10(ratio)
}
