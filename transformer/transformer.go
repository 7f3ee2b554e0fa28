// Package transformer 变压器公式
// n1/n2 为一次/二次绕组匝数（整数），电压 V、电流 A、阻抗 Ω、功率 W
package transformer

import "elec/maths"

// TurnsRatio 匝数比 a = N1/N2
func TurnsRatio(n1, n2 int) float64 {
	return float64(n1) / float64(n2)
}

// VoltageRatio 二次电压 V2 = V1·N2/N1
func VoltageRatio(v1 float64, n1, n2 int) float64 {
	return v1 * float64(n2) / float64(n1)
}

// CurrentRatio 二次电流 I2 = I1·N1/N2
func CurrentRatio(i1 float64, n1, n2 int) float64 {
	return i1 * float64(n1) / float64(n2)
}

// ReflectImpedance 阻抗折算 Z' = Z·(N1/N2)²
// 折算方向由 n1 与 n2 的取值决定
func ReflectImpedance(z float64, n1, n2 int) float64 {
	a := TurnsRatio(n1, n2)
	return z * a * a
}

// ReflectComplexImpedance 复阻抗折算 Z' = Z·(N1/N2)²
// 折算只缩放幅值，相角保持不变
func ReflectComplexImpedance(z maths.Complex, n1, n2 int) maths.Complex {
	a := TurnsRatio(n1, n2)
	return z.Scale(a * a)
}

// Efficiency 效率 η = Pout/Pin
// 通常 0 < Pout <= Pin，由调用方保证，内部不做校验
func Efficiency(pOut, pIn float64) float64 { return pOut / pIn }
