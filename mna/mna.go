// Package mna 线性电阻网络的改进节点分析 (Modified Nodal Analysis)
// 通过一系列"加盖"(Stamp)操作构建方程 A·x = z，单次求解得到
// 节点电压与电压源支路电流。仅支持线性电阻与独立源，无时域迭代。
package mna

import "gonum.org/v1/gonum/mat"

// NodeID 节点编号，Gnd 表示地节点
type NodeID int

// Gnd 地节点，所有针对地节点的加盖操作被忽略
const Gnd NodeID = -1

// System 节点方程系统 A·x = z
//
//	前 nodes 个未知量为节点电压，其后 voltageSources 个为电压源电流
type System struct {
	a              *mat.Dense    // 求解矩阵A
	z              *mat.VecDense // 已知向量Z
	x              *mat.VecDense // 未知向量X (解)
	nodes          int           // 电路节点数量（不含地节点）
	voltageSources int           // 独立电压源数量
	solved         bool          // 是否已求解
}

// New 创建节点方程系统
//
//	nodes: 电路节点数量（不含地节点）
//	voltageSources: 独立电压源数量
func New(nodes, voltageSources int) *System {
	n := nodes + voltageSources // 总方程数量
	return &System{
		a:              mat.NewDense(n, n, nil),
		z:              mat.NewVecDense(n, nil),
		x:              mat.NewVecDense(n, nil),
		nodes:          nodes,
		voltageSources: voltageSources,
	}
}

// Nodes 电路节点数量（不含地节点）
func (s *System) Nodes() int { return s.nodes }

// VoltageSources 独立电压源数量
func (s *System) VoltageSources() int { return s.voltageSources }

// Zero 将系统重置为零，以便重新加盖
func (s *System) Zero() {
	s.a.Zero()
	s.z.Zero()
	s.x.Zero()
	s.solved = false
}

// StampMatrix 将一个值加到矩阵A的(i,j)元素上，地节点索引被忽略
func (s *System) StampMatrix(i, j NodeID, value float64) {
	if i > Gnd && j > Gnd {
		s.a.Set(int(i), int(j), s.a.At(int(i), int(j))+value)
	}
}

// StampRightSide 将一个值加到已知向量Z的第i项上，地节点索引被忽略
func (s *System) StampRightSide(i NodeID, value float64) {
	if i > Gnd {
		s.z.SetVec(int(i), s.z.AtVec(int(i))+value)
	}
}

// StampConductance 在节点 n1、n2 之间加盖电导 g (S)
func (s *System) StampConductance(n1, n2 NodeID, g float64) {
	s.StampMatrix(n1, n1, g)
	s.StampMatrix(n2, n2, g)
	s.StampMatrix(n1, n2, -g)
	s.StampMatrix(n2, n1, -g)
}

// StampResistor 在节点 n1、n2 之间加盖电阻 r (Ω)
func (s *System) StampResistor(n1, n2 NodeID, r float64) {
	s.StampConductance(n1, n2, 1/r)
}

// StampCurrentSource 加盖独立电流源，电流 i 从 n1 流向 n2
func (s *System) StampCurrentSource(n1, n2 NodeID, i float64) {
	s.StampRightSide(n1, -i)
	s.StampRightSide(n2, i)
}

// StampVoltageSource 加盖独立电压源，正极 n1、负极 n2、电压 v
//
//	vs: 电压源索引，0 <= vs < voltageSources
func (s *System) StampVoltageSource(n1, n2 NodeID, vs int, v float64) {
	row := NodeID(s.nodes + vs)
	s.StampMatrix(row, n1, 1)
	s.StampMatrix(row, n2, -1)
	s.StampMatrix(n1, row, 1)
	s.StampMatrix(n2, row, -1)
	s.StampRightSide(row, v)
}

// Solve 求解 A·x = z
// 矩阵奇异（悬空节点、矛盾约束）时返回错误
func (s *System) Solve() error {
	if err := s.x.SolveVec(s.a, s.z); err != nil {
		return err
	}
	s.solved = true
	return nil
}

// NodeVoltage 从解向量获取节点电压，地节点或无效节点返回 0
func (s *System) NodeVoltage(i NodeID) float64 {
	if i > Gnd && int(i) < s.nodes && s.solved {
		return s.x.AtVec(int(i))
	}
	return 0
}

// VoltageSourceCurrent 从解向量获取流经指定电压源的电流
// MNA 约定：返回值为从正极经电压源内部流向负极的电流
func (s *System) VoltageSourceCurrent(vs int) float64 {
	if vs > -1 && vs < s.voltageSources && s.solved {
		return s.x.AtVec(s.nodes + vs)
	}
	return 0
}
