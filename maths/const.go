package maths

import "math"

// 补充必要常量（浮点精度阈值）
const Epsilon = 1e-16

const (
	TwoPi = 2 * math.Pi           // 2π，角频率换算
	Sqrt3 = 1.7320508075688772935 // √3，三相线相换算
)
