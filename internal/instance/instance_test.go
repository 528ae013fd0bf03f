// SPDX-License-Identifier: MIT

package instance_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/internal/instance"
	"github.com/katalvlaran/atsp/matrix"
)

const plainFour = `4
-1 10 15 20
 5 -1  9 10
 6 13 -1 12
 8  8  9 -1
`

const tsplibFour = `NAME: four
TYPE: ATSP
COMMENT: textbook instance
DIMENSION: 4
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: FULL_MATRIX
EDGE_WEIGHT_SECTION
 9999 10 15 20
 5 9999 9 10
 6 13 9999
 12 8 8 9 9999
EOF
`

var wantFour = [][]int64{
	{-1, 10, 15, 20},
	{5, -1, 9, 10},
	{6, 13, -1, 12},
	{8, 8, 9, -1},
}

func TestParse_Plain(t *testing.T) {
	in, err := instance.Parse(strings.NewReader(plainFour))
	require.NoError(t, err)
	require.Equal(t, 4, in.Size())
	require.Equal(t, wantFour, in.Costs.Rows())
	require.Empty(t, in.Name)
}

func TestParse_PlainSingleLine(t *testing.T) {
	in, err := instance.Parse(strings.NewReader("2 -1 3 4 -1"))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{-1, 3}, {4, -1}}, in.Costs.Rows())
}

func TestParse_TSPLIB(t *testing.T) {
	in, err := instance.Parse(strings.NewReader(tsplibFour))
	require.NoError(t, err)
	require.Equal(t, "four", in.Name)
	require.Equal(t, "textbook instance", in.Comment)
	require.Equal(t, wantFour, in.Costs.Rows(), "diagonal sentinels become forbidden")
}

func TestParse_TSPLIBWithoutEOF(t *testing.T) {
	src := strings.TrimSuffix(tsplibFour, "EOF\n")
	in, err := instance.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, in.Size())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "  \n\n", instance.ErrSyntax},
		{"zero cities", "0", instance.ErrDimension},
		{"short plain", "2 -1 3 4", instance.ErrDimension},
		{"long plain", "2 -1 3 4 -1 7", instance.ErrDimension},
		{"bad weight", "2 -1 x 4 -1", instance.ErrSyntax},
		{"too costly", "2 -1 9999999999 4 -1", matrix.ErrCostTooLarge},
		{"no dimension", "NAME: x\nEDGE_WEIGHT_SECTION\n0 1 1 0\n", instance.ErrDimension},
		{"bad dimension", "DIMENSION: two\n", instance.ErrDimension},
		{"no section", "NAME: x\nDIMENSION: 2\nEOF\n", instance.ErrSyntax},
		{"bad header", "NAME x\nDIMENSION: 2\n", instance.ErrSyntax},
		{"euclidean", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\n", instance.ErrUnsupported},
		{"upper row", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\n", instance.ErrUnsupported},
		{"hcp", "TYPE: HCP\nDIMENSION: 2\n", instance.ErrUnsupported},
		{"short section", "DIMENSION: 2\nEDGE_WEIGHT_SECTION\n0 1 1\nEOF\n", instance.ErrDimension},
		{"huge dimension", "NAME: x\nDIMENSION: 3000000000\nEDGE_WEIGHT_SECTION\n0 1\n", instance.ErrDimension},
		{"dimension over cap", fmt.Sprintf("DIMENSION: %d\nEDGE_WEIGHT_SECTION\n0 1\n", instance.MaxCities+1), instance.ErrDimension},
		{"huge plain", "3000000000 0 1", instance.ErrDimension},
		{"truncated large plain", fmt.Sprintf("%d 0 1 2", instance.MaxCities), instance.ErrDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Parse(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_NamesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "four.atsp")
	require.NoError(t, os.WriteFile(path, []byte(plainFour), 0o600))

	in, err := instance.Load(path)
	require.NoError(t, err)
	require.Equal(t, "four", in.Name)

	_, err = instance.Load(filepath.Join(dir, "missing.atsp"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
