package data

import (
	"testing"

	"github.com/udisondev/dmgcalc/internal/model"
)

// BenchmarkLoadDefaultDex benchmarks YAML decoding and indexing of the embedded data.
func BenchmarkLoadDefaultDex(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		if _, err := LoadDefaultDex(); err != nil {
			b.Fatalf("LoadDefaultDex: %v", err)
		}
	}
}

// BenchmarkDexSpeciesLookup benchmarks a normalized alias lookup.
func BenchmarkDexSpeciesLookup(b *testing.B) {
	dex, err := LoadDefaultDex()
	if err != nil {
		b.Fatalf("LoadDefaultDex: %v", err)
	}

	b.ReportAllocs()
	for range b.N {
		_, _ = dex.Species("Ｍｅｏｗｔｈ")
	}
}

// BenchmarkEffectivenessDual benchmarks a dual-type chart lookup.
func BenchmarkEffectivenessDual(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_, _ = Effectiveness(model.TypeIce, model.TypeDragon, model.TypeGround)
	}
}
