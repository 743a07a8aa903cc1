package sampling_test

import (
	"fmt"
	"testing"

	"github.com/paleogo/taphos/sampling"
	"github.com/paleogo/taphos/strata"
	"github.com/paleogo/taphos/treegen"
)

// BenchmarkPoisson measures the homogeneous model over caterpillar trees of
// increasing size. Total branch length grows quadratically with tips, so the
// rate is scaled down to keep the occurrence count stable.
func BenchmarkPoisson(b *testing.B) {
	for _, tips := range []int{64, 256} {
		b.Run(fmt.Sprintf("tips=%d", tips), func(b *testing.B) {
			tr, err := treegen.Caterpillar(tips)
			if err != nil {
				b.Fatal(err)
			}
			rate := sampling.Scalar(256.0 / float64(tips*tips))

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sampling.Poisson(tr, nil, rate, sampling.WithSeed(1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkIntervals measures both interval variants on a 256-tip tree cut
// into 16 uniform intervals.
func BenchmarkIntervals(b *testing.B) {
	tr, err := treegen.Caterpillar(256)
	if err != nil {
		b.Fatal(err)
	}
	p, err := strata.Uniform(255, 16)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Rates", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := sampling.Intervals(tr, nil, p, sampling.WithRates(sampling.Scalar(0.005)), sampling.WithSeed(1)); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Probabilities", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := sampling.Intervals(tr, nil, p, sampling.WithProbabilities(sampling.Scalar(0.2)), sampling.WithSeed(1)); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkEnvironment measures the niche model in both spaces on a 256-tip
// tree with a 16-point proxy curve.
func BenchmarkEnvironment(b *testing.B) {
	tr, err := treegen.Caterpillar(256)
	if err != nil {
		b.Fatal(err)
	}
	p, err := strata.Uniform(255, 16)
	if err != nil {
		b.Fatal(err)
	}
	proxy := make([]float64, p.Count())
	for i := range proxy {
		proxy[i] = float64(i)
	}
	niche := sampling.Niche{
		Peak:      sampling.Scalar(0.3),
		Preferred: sampling.Scalar(8),
		Tolerance: sampling.Scalar(4),
	}

	b.Run("Probability", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := sampling.Environment(tr, nil, p, proxy, niche, sampling.WithSeed(1)); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("RateSpace", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := sampling.Environment(tr, nil, p, proxy, niche, sampling.WithRateSpace(), sampling.WithSeed(1)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
