package model

// Input is one evaluation request: a conductor between two reservoirs.
type Input struct {
	Material string  `json:"material"`
	Area     float64 `json:"area"`      // m^2
	Length   float64 `json:"length"`    // m
	HotTemp  float64 `json:"hot_temp"`  // K
	ColdTemp float64 `json:"cold_temp"` // K
}

// ConductorGeometry is the conducting path between the reservoirs.
type ConductorGeometry struct {
	Area   float64 `json:"area"`
	Length float64 `json:"length"`
}

// ReservoirPair holds both bath temperatures, each constant.
type ReservoirPair struct {
	HotTemp  float64 `json:"hot_temp"`
	ColdTemp float64 `json:"cold_temp"`
}

func (in Input) Geometry() ConductorGeometry {
	return ConductorGeometry{Area: in.Area, Length: in.Length}
}

func (in Input) Reservoirs() ReservoirPair {
	return ReservoirPair{HotTemp: in.HotTemp, ColdTemp: in.ColdTemp}
}

// Result is derived once per evaluation and never mutated.
type Result struct {
	TempDiff        float64 `json:"temp_diff"`         // K
	HeatFlow        float64 `json:"heat_flow"`         // W
	EntropyFlowHot  float64 `json:"entropy_flow_hot"`  // W/K, negative
	EntropyFlowCold float64 `json:"entropy_flow_cold"` // W/K, positive
	NetEntropyRate  float64 `json:"net_entropy_rate"`  // W/K
}

// Record is the flat text row handed to a sink.
type Record struct {
	RunID           string `json:"run_id"`
	HotTemp         string `json:"hot_temp"`
	ColdTemp        string `json:"cold_temp"`
	TempDiff        string `json:"temp_diff"`
	HeatFlow        string `json:"heat_flow"`
	EntropyFlowHot  string `json:"entropy_flow_hot"`
	EntropyFlowCold string `json:"entropy_flow_cold"`
	NetEntropyRate  string `json:"net_entropy_rate"`
}

// Core returns hot temp, cold temp and heat flow.
func (r Record) Core() []string {
	return []string{r.HotTemp, r.ColdTemp, r.HeatFlow}
}

func (r Record) Full() []string {
	return []string{
		r.HotTemp,
		r.ColdTemp,
		r.TempDiff,
		r.HeatFlow,
		r.EntropyFlowHot,
		r.EntropyFlowCold,
		r.NetEntropyRate,
	}
}

func (r Record) Fields(full bool) []string {
	if full {
		return r.Full()
	}
	return r.Core()
}

// 物性参数
type Material struct {
	Name                string  `json:"name"`
	ThermalConductivity float64 `json:"thermal_conductivity"` // W/(m K)
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgEnv       = "env"
	MsgEnvSet    = "envSet"
	MsgStart     = "start"
	MsgResult    = "result"
	MsgMaterials = "materials"
	MsgStop      = "stop"
	MsgStopped   = "stopped"
	MsgError     = "error"
)

// ResultReply is the content of a "result" message.
type ResultReply struct {
	RunID        string   `json:"run_id"`
	Input        Input    `json:"input"`
	Conductivity float64  `json:"conductivity"`
	Result       Result   `json:"result"`
	Lines        []string `json:"lines"`
}
