// Package openpath_test - insertion-cost consistency checks.
//
// Collinear point instances make the heuristic's decisions provable by
// hand: inserting a point between the adjacent pair that brackets it has
// marginal cost exactly zero, while every front/back alternative is
// strictly positive, so the final path is always monotone along the line
// and its travel cost equals the spread of the x coordinates. Any
// mis-computed position case would break that equality.
package openpath_test

import (
	"testing"

	"github.com/katalvlaran/pathorder/openpath"
	"github.com/stretchr/testify/require"
)

// TestFindPath_Collinear_CostEqualsSpread verifies that the realized
// travel cost on collinear single-orientation points equals max−min of
// the coordinates, for several instance shapes.
func TestFindPath_Collinear_CostEqualsSpread(t *testing.T) {
	cases := []struct {
		name   string
		xs     []float64
		spread float64
	}{
		{name: "three_points", xs: []float64{0, 2, 1}, spread: 2},
		{name: "five_points", xs: []float64{4, 0, 3, 1, 2}, spread: 4},
		{name: "uneven_gaps", xs: []float64{10, -3, 0.5, 7, 2.25, -1}, spread: 13},
		{name: "duplicate_coordinates", xs: []float64{1, 5, 1, 3}, spread: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sites := collinearSites(tc.xs...)

			res, err := openpath.FindPath(sites, siteOrientations, openpath.DefaultOptions())
			require.NoError(t, err)
			require.Len(t, res.Elements, len(sites))

			cost, err := openpath.PathCost(res, siteOrientations, nil)
			require.NoError(t, err)
			require.Equal(t, tc.spread, cost)
		})
	}
}

// TestFindPath_Collinear_MonotoneOrder verifies the stronger structural
// property behind the spread equality: the visiting order is monotone
// along the line (in one direction or the other).
func TestFindPath_Collinear_MonotoneOrder(t *testing.T) {
	sites := collinearSites(6, 1, 9, 4, 0, 2.5, 8)

	res, err := openpath.FindPath(sites, siteOrientations, openpath.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Elements, len(sites))

	// Establish the direction from the endpoints, then require every
	// consecutive step to follow it.
	ascending := res.Elements[0].X < res.Elements[len(res.Elements)-1].X
	for i := 1; i < len(res.Elements); i++ {
		if ascending {
			require.LessOrEqual(t, res.Elements[i-1].X, res.Elements[i].X)
		} else {
			require.GreaterOrEqual(t, res.Elements[i-1].X, res.Elements[i].X)
		}
	}
}

// TestFindPath_MiddleInsertion_MarginalCost verifies the middle-position
// formula (entry/exit gaps minus the removed edge) end to end: adding a
// point that lies exactly on the line between two far sites must leave
// the total travel cost unchanged.
func TestFindPath_MiddleInsertion_MarginalCost(t *testing.T) {
	// Two-site baseline.
	base, err := openpath.FindPath(collinearSites(0, 10), siteOrientations, openpath.DefaultOptions())
	require.NoError(t, err)
	baseCost, err := openpath.PathCost(base, siteOrientations, nil)
	require.NoError(t, err)
	require.Equal(t, 10.0, baseCost)

	// Same instance with interior points added: identical travel cost.
	grown, err := openpath.FindPath(collinearSites(0, 10, 4, 7, 1), siteOrientations, openpath.DefaultOptions())
	require.NoError(t, err)
	grownCost, err := openpath.PathCost(grown, siteOrientations, nil)
	require.NoError(t, err)
	require.Equal(t, baseCost, grownCost)
}
