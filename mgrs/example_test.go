// File: mgrs/example_test.go
package mgrs_test

import (
	"fmt"

	"github.com/shruda/geodesy/crs"
	"github.com/shruda/geodesy/mgrs"
	"github.com/shruda/geodesy/provider"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encoder.Encode
////////////////////////////////////////////////////////////////////////////////

// ExampleEncoder_Encode demonstrates grid references at three
// resolutions for a geographic position near Mainz, Germany.
// Scenario:
//
//   - Source CRS: WGS 84 geographic, positions as (latitude, longitude)
//   - digits = 5 → 1 m cells, digits = 2 → 1 km cells, digits = 0 →
//     the bare 100 km square
//   - Values are truncated, never rounded: the label always names the
//     cell containing the position
func ExampleEncoder_Encode() {
	factory := provider.NewFactory(crs.NewRegistry())
	enc, err := mgrs.NewEncoder(factory, factory.Registry().Geographic())
	if err != nil {
		panic(err)
	}

	for _, digits := range []int{5, 2, 0} {
		label, err := enc.Encode([]float64{50, 8}, digits)
		if err != nil {
			panic(err)
		}
		fmt.Println(label)
	}

	// Output:
	// 32UMA2833339109
	// 32UMA2839
	// 32UMA
}

////////////////////////////////////////////////////////////////////////////////
// Example: polar caps
////////////////////////////////////////////////////////////////////////////////

// ExampleEncoder_Encode_polar shows the hand-off from the UTM body of
// the grid to the Universal Polar Stereographic bands: beyond 84°N the
// label carries a Y/Z band and no zone number.
func ExampleEncoder_Encode_polar() {
	factory := provider.NewFactory(crs.NewRegistry())
	enc, err := mgrs.NewEncoder(factory, factory.Registry().Geographic(),
		mgrs.WithSeparator(" "))
	if err != nil {
		panic(err)
	}

	northPole, _ := enc.Encode([]float64{90, 0}, 1)
	svalbardSea, _ := enc.Encode([]float64{87, 45}, 5)
	fmt.Println(northPole)
	fmt.Println(svalbardSea)

	// Output:
	// Z AH 0 0
	// Z CE 35568 64431
}
