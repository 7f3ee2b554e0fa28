package threephase

import (
	"math"
	"testing"

	"elec/maths"
)

// TestThreePhasePower 测试三相功率公式
func TestThreePhasePower(t *testing.T) {
	// 400V、10A、pf=0.8：P = √3·400·10·0.8 ≈ 5542.56W
	p := PowerStar(400, 10, 0.8)
	if math.Abs(p-5542.56) > 0.1 {
		t.Errorf("Expected 5542.56, got %f", p)
	}

	// 线量公式对两种接法相同
	if d := PowerDelta(400, 10, 0.8); d != p {
		t.Errorf("Expected %f, got %f", p, d)
	}

	// S·pf == P
	s := ApparentPower(400, 10)
	if math.Abs(s*0.8-p) > 1e-9 {
		t.Errorf("Expected %f, got %f", p, s*0.8)
	}
}

// TestLinePhaseConversion 测试线相转换及其互逆性
func TestLinePhaseConversion(t *testing.T) {
	// 400V 线电压对应约 230.9V 相电压
	vp := LineToPhaseVoltageStar(400)
	if math.Abs(vp-230.94) > 0.01 {
		t.Errorf("Expected 230.94, got %f", vp)
	}
	// 互逆
	if vl := PhaseToLineVoltageStar(vp); math.Abs(vl-400) > 1e-9 {
		t.Errorf("Round-trip failed. Expected 400, got %f", vl)
	}

	ip := LineToPhaseCurrentDelta(30)
	if il := PhaseToLineCurrentDelta(ip); math.Abs(il-30) > 1e-9 {
		t.Errorf("Round-trip failed. Expected 30, got %f", il)
	}
}

// TestShortCircuitCurrent 测试短路电流计算
func TestShortCircuitCurrent(t *testing.T) {
	// 230V、0.5Ω 短路阻抗：460A
	if isc := ShortCircuitCurrent(230, 0.5); isc != 460 {
		t.Errorf("Expected 460, got %f", isc)
	}
	// 零阻抗按除零语义返回 Inf
	if isc := ShortCircuitCurrent(230, 0); !math.IsInf(isc, 1) {
		t.Errorf("Expected +Inf, got %f", isc)
	}

	// 复阻抗形式：幅值一致，电流相角为负的阻抗相角
	z := maths.NewComplex(0.3, 0.4)
	isc := ShortCircuitCurrentComplex(230, z)
	if math.Abs(isc.Magnitude()-ShortCircuitCurrent(230, z.Magnitude())) > 1e-9 {
		t.Errorf("Expected magnitude %f, got %f", ShortCircuitCurrent(230, z.Magnitude()), isc.Magnitude())
	}
	if math.Abs(isc.Phase()+z.Phase()) > 1e-12 {
		t.Errorf("Expected phase %f, got %f", -z.Phase(), isc.Phase())
	}
}
