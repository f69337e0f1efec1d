package quad

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// The Newton and Golub-Welsch paths share no code, so agreement between them
// validates both the root refinement and the weight formulas.

func TestGolubWelschLegendreAgreesWithNewton(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-11, 1e-13)
	for _, n := range []int{1, 2, 3, 7, 16, 33, 64} {
		r, err := GaussLegendre[float64](n)
		require.NoError(t, err)
		X, W := GolubWelschLegendre(n)
		if diff := cmp.Diff(r.Nodes, X.DataP, approx); diff != "" {
			t.Errorf("n=%d nodes (-newton +eigen):\n%s", n, diff)
		}
		if diff := cmp.Diff(r.Weights, W.DataP, approx); diff != "" {
			t.Errorf("n=%d weights (-newton +eigen):\n%s", n, diff)
		}
	}
}

func TestGolubWelschLobattoAgreesWithNewton(t *testing.T) {
	approx := cmpopts.EquateApprox(1e-11, 1e-13)
	for _, n := range []int{2, 3, 4, 5, 6, 12, 33} {
		r, err := GaussLobatto[float64](n)
		require.NoError(t, err)
		X, W := GolubWelschLobatto(n)
		if diff := cmp.Diff(r.Nodes, X.DataP, approx); diff != "" {
			t.Errorf("n=%d nodes (-newton +eigen):\n%s", n, diff)
		}
		if diff := cmp.Diff(r.Weights, W.DataP, approx); diff != "" {
			t.Errorf("n=%d weights (-newton +eigen):\n%s", n, diff)
		}
	}
}
