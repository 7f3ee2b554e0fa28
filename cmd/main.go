package main

import (
	"fmt"

	"elec/ac"
	"elec/control"
	"elec/dc"
	"elec/mna"
	"elec/motor"
	"elec/threephase"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	// 示例1：RC 充电曲线
	r, c := 1000.0, 100e-6
	tau := control.TimeConstantRC(r, c)
	fmt.Printf("RC 时间常数: %.3f s\n", tau)
	if err := plotCurve("rc_charge.png", "RC Charging", "t (s)", "v (V)",
		0, 5*tau, func(t float64) float64 {
			return control.CapacitorChargingVoltage(10, t, r, c)
		}); err != nil {
		fmt.Println(err)
		return
	}

	// 示例2：串联 RLC 阻抗频率扫描
	l, c2 := 0.1, 100e-6
	f0 := ac.ResonanceFrequency(l, c2)
	q := ac.QualityFactorRLC(l, c2, 10)
	fmt.Printf("谐振频率: %.2f Hz  品质因数: %.2f\n", f0, q)
	if err := plotCurve("rlc_impedance.png", "Series RLC Impedance", "f (Hz)", "|Z| (Ohm)",
		1, 2*f0, func(f float64) float64 {
			return ac.ImpedanceRLC(10, ac.InductiveReactance(f, l), ac.CapacitiveReactance(f, c2))
		}); err != nil {
		fmt.Println(err)
		return
	}

	// 示例3：一阶系统阶跃响应
	if err := plotCurve("step_response.png", "First-Order Step Response", "t (s)", "y",
		0, 5, func(t float64) float64 {
			return control.StepResponse(1, t, 1)
		}); err != nil {
		fmt.Println(err)
		return
	}

	// 示例4：分压网络的公式解与节点分析解对照
	vin, r1, r2 := 10.0, 1000.0, 1000.0
	fmt.Printf("分压公式: %.3f V\n", dc.VoltageDivider(vin, r1, r2))
	sys := mna.New(2, 1)
	sys.StampVoltageSource(0, mna.Gnd, 0, vin)
	sys.StampResistor(0, 1, r1)
	sys.StampResistor(1, mna.Gnd, r2)
	if err := sys.Solve(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("节点分析: %.3f V\n", sys.NodeVoltage(1))

	// 示例5：电机与三相算例
	ns := motor.SynchronousSpeed(50, 2)
	fmt.Printf("同步转速: %.0f RPM  转差率: %.3f\n", ns, motor.Slip(ns, 1440))
	fmt.Printf("三相功率: %.1f W\n", threephase.PowerStar(400, 10, 0.8))
}

// plotCurve 对 [x0,x1] 区间采样 fn 并输出 PNG 曲线图
func plotCurve(file, title, xlabel, ylabel string, x0, x1 float64, fn func(float64) float64) error {
	const n = 500
	pts := make(plotter.XYs, n)
	for i := range pts {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		pts[i].X = x
		pts[i].Y = fn(x)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, file)
}
