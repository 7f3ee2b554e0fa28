package dc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// KCLResidual 基尔霍夫电流定律残差：节点各支路带符号电流之和
// 符号约定由调用方通过带符号值提供（如流入为正，流出为负）
func KCLResidual(currents []float64) float64 {
	return floats.Sum(currents)
}

// KCLCheck 校验节点电流是否满足基尔霍夫电流定律
// 当 |Σi| <= tolerance 时返回 true
func KCLCheck(currents []float64, tolerance float64) bool {
	return math.Abs(KCLResidual(currents)) <= tolerance
}

// KVLResidual 基尔霍夫电压定律残差：回路各元件带符号电压之和
func KVLResidual(voltages []float64) float64 {
	return floats.Sum(voltages)
}

// KVLCheck 校验回路电压是否满足基尔霍夫电压定律
// 当 |Σv| <= tolerance 时返回 true
func KVLCheck(voltages []float64, tolerance float64) bool {
	return math.Abs(KVLResidual(voltages)) <= tolerance
}
