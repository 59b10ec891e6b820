package tables

// Half of the low-pass prototype h. The full prototype of 10*M taps is
// symmetric around tap 5*M: h[i] = half[i] for i <= 5*M, h[i] = half[10*M-i]
// otherwise.
var (
	proto4Half = [21]float64{
		0.0, 5.36548976e-04, 1.49188357e-03, 2.73370904e-03,
		3.83720193e-03, 3.89205149e-03, 1.86581691e-03, -3.06012286e-03,
		-1.09137620e-02, -2.04385087e-02, -2.88757392e-02, -3.21939290e-02,
		-2.58767811e-02, -6.13245186e-03, 2.88217274e-02, 7.76463494e-02,
		1.35593274e-01, 1.94987841e-01, 2.46636662e-01, 2.81828203e-01,
		2.94315332e-01,
	}

	proto8Half = [41]float64{
		0.0, 1.56575398e-04, 3.43256425e-04, 5.54620202e-04,
		8.23919506e-04, 1.13992507e-03, 1.47640169e-03, 1.78371725e-03,
		2.01182542e-03, 2.10371989e-03, 1.99454554e-03, 1.61656283e-03,
		9.02154502e-04, -1.78805361e-04, -1.64973098e-03, -3.49717454e-03,
		-5.65949473e-03, -8.02941163e-03, -1.04584443e-02, -1.27472335e-02,
		-1.46525263e-02, -1.59045603e-02, -1.62208471e-02, -1.53184106e-02,
		-1.29371806e-02, -8.85757540e-03, -2.92408442e-03, 4.91578024e-03,
		1.46404076e-02, 2.61098752e-02, 3.90751381e-02, 5.31873032e-02,
		6.79989431e-02, 8.29847578e-02, 9.75753918e-02, 1.11196689e-01,
		1.23264548e-01, 1.33264415e-01, 1.40753505e-01, 1.45389847e-01,
		1.46955068e-01,
	}
)

// cos16 holds cos(n*pi/16) for n = 0..8. Every modulation factor of the
// 4- and 8-band filterbank is one of these values up to sign.
var cos16 = [9]float64{
	1,
	0.98078528040323043,
	0.92387953251128674,
	0.83146961230254524,
	0.70710678118654752,
	0.55557023301960218,
	0.38268343236508977,
	0.19509032201612826,
	0,
}

// LowPass returns the symmetric low-pass prototype h for the given subband
// count. It panics if subbands is not 4 or 8.
func LowPass(subbands int) []float64 {
	var half []float64
	switch subbands {
	case 4:
		half = proto4Half[:]
	case 8:
		half = proto8Half[:]
	default:
		panic("tables: subbands must be 4 or 8")
	}

	n := TapCount(subbands)
	h := make([]float64, n)
	for i := range h {
		h[i] = half[min(i, n-i)]
	}
	return h
}

// Prototype returns the analysis window C for the given subband count:
// C[i] = (-1)^j * h[i] for tap i in group j = i/(2M), so taps i+2Mj all fold
// onto modulation row i. It panics if subbands is not 4 or 8.
func Prototype(subbands int) []float64 {
	c := LowPass(subbands)
	for i := range c {
		if (i/(2*subbands))%2 == 1 {
			c[i] = -c[i]
		}
	}
	return c
}

// Modulation returns cos((k+0.5)*(offset-M/2)*pi/M), the factor applied to
// the windowed sample at the given offset for subband k.
func Modulation(subbands, k, offset int) float64 {
	return quarterCos(subbands, (2*k+1)*(2*offset-subbands)/2)
}

// quarterCos returns cos(n*pi/(2*M)) from the literal table.
func quarterCos(subbands, n int) float64 {
	period := 4 * subbands
	n = ((n % period) + period) % period
	if n > 2*subbands {
		n = period - n
	}
	sign := 1.0
	if n > subbands {
		n = 2*subbands - n
		sign = -1
	}
	return sign * cos16[n*(8/subbands)]
}
