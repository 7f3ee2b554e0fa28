// Package elec 电气工程公式库
//
// 提供直流/交流电路、电力系统、变压器、电机、三相系统、信号处理、
// 基础电子学与一阶控制系统的闭式计算公式。
// 所有函数均为纯函数：输入为物理量（SI单位，角度默认为弧度），
// 输出为计算结果，不做输入校验，遵循 IEEE-754 语义
// （除零得到 Inf/NaN 而不是错误）。
//
// 各领域子包:
//
//	maths       复数/相量运算
//	dc          直流电路（欧姆定律、功率、串并联、分压、基尔霍夫定律校验）
//	ac          交流电路（角频率、电抗、阻抗、谐振、品质因数）
//	power       电力系统（视在/有功/无功功率、功率因数）
//	transformer 变压器（匝数比、电压电流比、阻抗折算、效率）
//	motor       电机（同步转速、转差率、转矩、效率）
//	threephase  三相系统（星形/三角形功率、线相转换、短路电流）
//	signal      信号处理（有效值、分贝转换）
//	electronics 电子学（二极管压降、运放增益、滤波器频率）
//	control     控制系统与暂态（时间常数、阶跃响应、RC/RL暂态）
//	mna         线性电阻网络节点分析（单次求解）
package elec
