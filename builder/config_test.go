// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies the default weight policy and last-wins overrides.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: integers in [1,20]
	cfgDefault := newBuilderConfig()
	for i := 0; i < 200; i++ {
		w := cfgDefault.weightFn(rng)
		if w < defaultWeightLo || w > defaultWeightHi || w != float64(int(w)) {
			t.Fatalf("default weightFn: expected integer in [1,20], got %g", w)
		}
	}

	// 2. Override order: last option wins
	cfgOverride := newBuilderConfig(WithWeightFn(ConstantWeightFn(3)), WithWeightFn(DefaultWeightFn))
	if w := cfgOverride.weightFn(rng); w != DefaultEdgeWeight {
		t.Errorf("override order: expected %g, got %g", DefaultEdgeWeight, w)
	}
}

// TestDegreeLimitOption verifies defaults and overrides of the degree bounds.
func TestDegreeLimitOption(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.maxDegree != 3 || cfg.maxDegreeRatio != 0.2 {
		t.Errorf("defaults: got maxDegree=%d ratio=%g", cfg.maxDegree, cfg.maxDegreeRatio)
	}

	cfg = newBuilderConfig(WithDegreeLimit(4, 0.5))
	if cfg.maxDegree != 4 || cfg.maxDegreeRatio != 0.5 {
		t.Errorf("override: got maxDegree=%d ratio=%g", cfg.maxDegree, cfg.maxDegreeRatio)
	}
}

// TestOptionPanics verifies option constructors panic on meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":           func() { WithRand(nil) },
		"WithWeightFn(nil)":       func() { WithWeightFn(nil) },
		"WithDegreeLimit(2,0.2)":  func() { WithDegreeLimit(2, 0.2) },
		"WithDegreeLimit(3,1.5)":  func() { WithDegreeLimit(3, 1.5) },
		"WithDegreeLimit(3,-0.1)": func() { WithDegreeLimit(3, -0.1) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

// TestValidators verifies the helpers wrap their sentinels and that
// WithDegreeLimit surfaces the validateMin message in its panic.
func TestValidators(t *testing.T) {
	t.Parallel()

	if err := validateMin(MethodRandomConnected, 3, MinMaxDegree); err != nil {
		t.Errorf("validateMin(3,3): unexpected error %v", err)
	}
	err := validateMin(MethodRandomConnected, 2, MinMaxDegree)
	if !errors.Is(err, ErrParamTooSmall) {
		t.Fatalf("validateMin(2,3): expected ErrParamTooSmall, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), MethodRandomConnected+": parameter must be ≥ 3, got 2") {
		t.Errorf("validateMin(2,3): unexpected message %q", err.Error())
	}
	if err := validateFraction(MethodRandomConnected, 1.5); !errors.Is(err, ErrInvalidFraction) {
		t.Errorf("validateFraction(1.5): expected ErrInvalidFraction, got %v", err)
	}

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "parameter must be ≥ 3, got 1") {
			t.Errorf("WithDegreeLimit(1,0.2): unexpected panic %v", r)
		}
	}()
	WithDegreeLimit(1, 0.2)
}
