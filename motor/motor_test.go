package motor

import (
	"math"
	"testing"
)

// TestSynchronousSpeedSlip 测试同步转速、转差率与实际转速
func TestSynchronousSpeedSlip(t *testing.T) {
	// 50Hz 二对极：1500 RPM
	ns := SynchronousSpeed(50, 2)
	if ns != 1500 {
		t.Errorf("Expected 1500, got %f", ns)
	}
	// 60Hz 一对极：3600 RPM
	if n := SynchronousSpeed(60, 1); n != 3600 {
		t.Errorf("Expected 3600, got %f", n)
	}

	// 1440 RPM 对应转差率 0.04
	s := Slip(1500, 1440)
	if math.Abs(s-0.04) > 1e-12 {
		t.Errorf("Expected 0.04, got %f", s)
	}

	// 往返：Ns 与 s 反求实际转速
	if n := InductionSpeed(1500, s); math.Abs(n-1440) > 1e-9 {
		t.Errorf("Round-trip failed. Expected 1440, got %f", n)
	}

	// 堵转转差率为 1，同步运行为 0
	if s := Slip(1500, 0); s != 1 {
		t.Errorf("Expected 1, got %f", s)
	}
	if s := Slip(1500, 1500); s != 0 {
		t.Errorf("Expected 0, got %f", s)
	}

	// 极对数为零按除零语义返回 Inf
	if n := SynchronousSpeed(50, 0); !math.IsInf(n, 1) {
		t.Errorf("Expected +Inf, got %f", n)
	}
}

// TestTorquePower 测试转矩与功率流
func TestTorquePower(t *testing.T) {
	// 1500 RPM、5kW：T = P/ω
	omega := RPMToRad(1500)
	tq := Torque(5000, omega)
	if math.Abs(tq-5000/omega) > 1e-12 {
		t.Errorf("Expected %f, got %f", 5000/omega, tq)
	}
	// T·ω 还原功率
	if p := tq * omega; math.Abs(p-5000) > 1e-9 {
		t.Errorf("Expected 5000, got %f", p)
	}

	// 效率与功率流互相一致
	if e := Efficiency(900, 1000); e != 0.9 {
		t.Errorf("Expected 0.9, got %f", e)
	}
	if p := InputPower(900, 0.9); math.Abs(p-1000) > 1e-9 {
		t.Errorf("Expected 1000, got %f", p)
	}
	if p := OutputPower(1000, 0.9); math.Abs(p-900) > 1e-9 {
		t.Errorf("Expected 900, got %f", p)
	}
}

// TestSpeedConversion 测试 RPM 与 rad/s 互转
func TestSpeedConversion(t *testing.T) {
	// 60 RPM = 1 转/秒 = 2π rad/s
	if w := RPMToRad(60); math.Abs(w-2*math.Pi) > 1e-12 {
		t.Errorf("Expected 2π, got %f", w)
	}
	if rpm := RadToRPM(RPMToRad(1440)); math.Abs(rpm-1440) > 1e-9 {
		t.Errorf("Round-trip failed. Expected 1440, got %f", rpm)
	}
}
