package power

import (
	"math"
	"testing"
)

// TestPowerComponents 测试视在/有功/无功功率的关系
func TestPowerComponents(t *testing.T) {
	v, i := 230.0, 10.0
	phi := math.Pi / 6 // 30°

	s := ApparentPower(v, i)
	p := ActivePower(v, i, phi)
	q := ReactivePower(v, i, phi)

	if s != 2300 {
		t.Errorf("Expected 2300, got %f", s)
	}
	// P² + Q² = S²（功率三角形）
	if math.Abs(math.Hypot(p, q)-s) > 1e-9 {
		t.Errorf("Power triangle broken. Expected %f, got %f", s, math.Hypot(p, q))
	}
	// 由三角形反求无功
	if q2 := PowerTriangleReactive(s, p); math.Abs(q2-q) > 1e-9 {
		t.Errorf("Expected %f, got %f", q, q2)
	}

	// 相位角为零时全部为有功
	if p0 := ActivePower(v, i, 0); p0 != s {
		t.Errorf("Expected %f, got %f", s, p0)
	}
	if q0 := ReactivePower(v, i, 0); q0 != 0 {
		t.Errorf("Expected 0, got %f", q0)
	}
}

// TestPowerFactor 测试功率因数与功率因数角
func TestPowerFactor(t *testing.T) {
	if pf := PowerFactor(800, 1000); pf != 0.8 {
		t.Errorf("Expected 0.8, got %f", pf)
	}

	// 纯有功负载角为零
	if a := PowerFactorAngle(1); a != 0 {
		t.Errorf("Expected 0, got %f", a)
	}
	if a := PowerFactorAngle(0); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("Expected π/2, got %f", a)
	}

	// PF 与角度往返一致
	phi := PowerFactorAngle(0.8)
	if math.Abs(math.Cos(phi)-0.8) > 1e-12 {
		t.Errorf("Round-trip failed. Expected 0.8, got %f", math.Cos(phi))
	}

	// 超出定义域返回 NaN，不钳位不报错
	if a := PowerFactorAngle(1.5); !math.IsNaN(a) {
		t.Errorf("Expected NaN, got %f", a)
	}
	if a := PowerFactorAngle(-1.5); !math.IsNaN(a) {
		t.Errorf("Expected NaN, got %f", a)
	}

	// 结果不钳位：非物理输入原样通过
	if pf := PowerFactor(1500, 1000); pf != 1.5 {
		t.Errorf("Expected 1.5, got %f", pf)
	}
}
