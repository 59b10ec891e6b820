package testutil

import "github.com/tphakala/go-sbc/internal/filterbank"

// GoldenCase is a fixed-point regression vector: consecutive driver calls on
// a fresh history and the blocks each call must produce, written with
// stride M.
type GoldenCase struct {
	Name     string
	Subbands int
	Calls    [][]int16
	Want     [][]int32
}

// Golden lists the regression vectors.
var Golden = []GoldenCase{
	{
		Name:     "ramp4",
		Subbands: 4,
		Calls:    [][]int16{Ramp(16, 0, 1), Ramp(16, 16, 1)},
		Want: [][]int32{
			make([]int32, 16),
			{
				89500, -15356, 15356, 15356,
				231428, -8996, 8996, -21716,
				336284, 12720, -12720, -21716,
				504426, 8222, -8222, 19854,
			},
		},
	},
	{
		Name:     "ramp8",
		Subbands: 8,
		Calls:    [][]int16{Ramp(32, 0, 1), Ramp(32, 32, 1)},
		Want: [][]int32{
			make([]int32, 32),
			{
				179000, -2338, 24054, 33158, -2446, 6658, -28374, 0,
				474937, -34451, 1401, -19801, -23631, 16591, 16459, -12081,
				781016, -8922, 3232, 29936, 9772, 23756, -18066, 18124,
				1002809, 5749, -13777, 6675, 33033, -2667, 10695, 6043,
			},
		},
	},
	{
		Name:     "scaled_ramp4",
		Subbands: 4,
		Calls:    [][]int16{Ramp(16, -16000, 1000), Ramp(16, 0, 1000)},
		Want: [][]int32{
			{
				-2280618, -1374614, -93370, 812634,
				-4134072, 3297064, -2038792, 778680,
				-44590956, -18537300, -2381472, 7314648,
				-56574362, 34044450, -34149306, 14422250,
			},
			{
				-418706292, -145073144, -15356536, 67962972,
				-396009846, 4277486, 52554466, -26769546,
				-157760000, -12069964, 955228, 4775096,
				-38763708, 2601312, 4843464, -2654412,
			},
		},
	},
	{
		Name:     "scaled_ramp8",
		Subbands: 8,
		Calls:    [][]int16{Ramp(32, -16000, 500), Ramp(32, 0, 500)},
		Want: [][]int32{
			{
				-2862952, -1209224, 504908, 853480, 37796, -596416, -272108, 398836,
				-5005506, 4428907, -1874393, -752850, 1553246, -247539, -1153559, 744862,
				-46845218, -16057333, 1884589, 6381140, 760868, -4199365, -1969955, 3003610,
				-64848513, 48222797, -29259447, -6775985, 20866909, -4001533, -15171529, 10073461,
			},
			{
				-434247373, -121327060, 27828922, 61684963, 4079129, -42628334, -19060408, 30427537,
				-363653345, -14423051, 43434003, -229289, -25799299, 7631033, 18302559, -12965107,
				-142975466, -10218400, 4363822, 4837338, -238774, -3420730, -1315148, 2378670,
				-19930640, 898704, 4096958, -343870, -2339874, 802154, 1646960, -1187928,
			},
		},
	},
}

// Run4 feeds consecutive 16-sample calls to fn on a fresh history and
// returns each call's output, blocks written with stride 4.
func Run4(fn filterbank.Analyze4Func, calls [][]int16) [][]int32 {
	var history [filterbank.History4]int16
	pos := filterbank.Start(4)
	out := make([][]int32, len(calls))
	for i, call := range calls {
		var pcm [filterbank.Input4]int16
		copy(pcm[:], call)
		out[i] = make([]int32, filterbank.Input4)
		fn(&pcm, (*[filterbank.Span4]int16)(history[pos:]), out[i], 4)
		pos = filterbank.Advance(pos, 4)
	}
	return out
}

// Run8 is the 8-band counterpart of Run4.
func Run8(fn filterbank.Analyze8Func, calls [][]int16) [][]int32 {
	var history [filterbank.History8]int16
	pos := filterbank.Start(8)
	out := make([][]int32, len(calls))
	for i, call := range calls {
		var pcm [filterbank.Input8]int16
		copy(pcm[:], call)
		out[i] = make([]int32, filterbank.Input8)
		fn(&pcm, (*[filterbank.Span8]int16)(history[pos:]), out[i], 8)
		pos = filterbank.Advance(pos, 8)
	}
	return out
}

// Split cuts a signal into consecutive calls of 4*subbands samples.
func Split(signal []int16, subbands int) [][]int16 {
	n := 4 * subbands
	var calls [][]int16
	for i := 0; i+n <= len(signal); i += n {
		calls = append(calls, signal[i:i+n])
	}
	return calls
}
