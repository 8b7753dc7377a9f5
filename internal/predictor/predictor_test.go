package predictor

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/blaisecz/better-rest/internal/domain"
)

func TestLinearModel_Predict(t *testing.T) {
	m := &LinearModel{
		Type:      modelTypeLinear,
		Intercept: 100,
		Coefficients: Coefficients{
			Wake:           0.5,
			EstimatedSleep: 3600,
			Coffee:         300,
		},
	}

	got, err := m.Predict(context.Background(), domain.Features{Wake: 1000, EstimatedSleep: 8, Coffee: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 100 + 500 + 28800 + 600.0
	if got.ActualSleep != want {
		t.Errorf("ActualSleep = %v, want %v", got.ActualSleep, want)
	}
}

func TestLinearModel_PredictRejectsNonFinite(t *testing.T) {
	m := DefaultLinearModel()

	_, err := m.Predict(context.Background(), domain.Features{Wake: math.NaN(), EstimatedSleep: 8, Coffee: 1})
	if !errors.Is(err, ErrPrediction) {
		t.Errorf("expected ErrPrediction, got %v", err)
	}
}

func TestLinearModel_PredictCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DefaultLinearModel().Predict(ctx, domain.Features{Wake: 25200, EstimatedSleep: 8, Coffee: 1})
	if !errors.Is(err, ErrPrediction) {
		t.Errorf("expected ErrPrediction, got %v", err)
	}
}

func TestDefaultLinearModel_MoreCoffeeNeedsMoreSleep(t *testing.T) {
	m := DefaultLinearModel()
	ctx := context.Background()

	one, _ := m.Predict(ctx, domain.Features{Wake: 25200, EstimatedSleep: 8, Coffee: 1})
	ten, _ := m.Predict(ctx, domain.Features{Wake: 25200, EstimatedSleep: 8, Coffee: 10})
	if ten.ActualSleep <= one.ActualSleep {
		t.Errorf("expected more coffee to need more sleep: 1 cup=%v, 10 cups=%v", one.ActualSleep, ten.ActualSleep)
	}
}

func TestLoadLinearModel(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	valid := write("valid.json", `{"type":"linear","version":"v2","intercept":10,"coefficients":{"wake":0,"estimated_sleep":3500,"coffee":200}}`)
	malformed := write("malformed.json", `{"type":`)
	wrongType := write("tree.json", `{"type":"boosted_tree"}`)

	tests := []struct {
		name    string
		path    string
		wantErr bool
		check   func(t *testing.T, m *LinearModel)
	}{
		{
			name: "empty path uses builtin",
			path: "",
			check: func(t *testing.T, m *LinearModel) {
				if m.Version != "builtin-1" {
					t.Errorf("Version = %q, want builtin-1", m.Version)
				}
			},
		},
		{
			name: "valid file",
			path: valid,
			check: func(t *testing.T, m *LinearModel) {
				if m.Version != "v2" || m.Coefficients.EstimatedSleep != 3500 || m.Intercept != 10 {
					t.Errorf("unexpected model: %+v", m)
				}
			},
		},
		{name: "missing file", path: filepath.Join(dir, "missing.json"), wantErr: true},
		{name: "malformed file", path: malformed, wantErr: true},
		{name: "unsupported type", path: wrongType, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadLinearModel(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrModelLoad) {
					t.Fatalf("expected ErrModelLoad, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, m)
		})
	}
}

func TestCachedProvider(t *testing.T) {
	builds := 0
	fail := true
	provider := NewCachedProvider(func(context.Context) (Predictor, error) {
		builds++
		if fail {
			return nil, ErrModelLoad
		}
		return DefaultLinearModel(), nil
	})

	ctx := context.Background()

	if _, err := provider.Predictor(ctx); !errors.Is(err, ErrModelLoad) {
		t.Fatalf("expected ErrModelLoad on first build, got %v", err)
	}

	fail = false
	first, err := provider.Predictor(ctx)
	if err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	second, err := provider.Predictor(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("expected cached model to be reused")
	}
	if builds != 2 {
		t.Errorf("builds = %d, want 2 (failed build is not cached)", builds)
	}
}

func TestStaticAndFunc(t *testing.T) {
	p := Func(func(ctx context.Context, f domain.Features) (domain.Prediction, error) {
		return domain.Prediction{ActualSleep: f.EstimatedSleep * 3600}, nil
	})

	got, err := Static(p).Predictor(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pred, _ := got.Predict(context.Background(), domain.Features{EstimatedSleep: 2})
	if pred.ActualSleep != 7200 {
		t.Errorf("ActualSleep = %v, want 7200", pred.ActualSleep)
	}
}
