package predictor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/blaisecz/better-rest/internal/domain"
)

const modelTypeLinear = "linear"

// Coefficients weight each feature of a linear sleep model.
type Coefficients struct {
	Wake           float64 `json:"wake"`
	EstimatedSleep float64 `json:"estimated_sleep"`
	Coffee         float64 `json:"coffee"`
}

// LinearModel predicts sleep seconds as intercept + coefficients · features.
type LinearModel struct {
	Type         string       `json:"type"`
	Version      string       `json:"version,omitempty"`
	Intercept    float64      `json:"intercept"`
	Coefficients Coefficients `json:"coefficients"`
}

// DefaultLinearModel approximates the bundled regression: an hour of wanted
// sleep costs an hour in bed and every cup of coffee adds a few minutes.
func DefaultLinearModel() *LinearModel {
	return &LinearModel{
		Type:      modelTypeLinear,
		Version:   "builtin-1",
		Intercept: -120,
		Coefficients: Coefficients{
			Wake:           0.004,
			EstimatedSleep: 3600,
			Coffee:         420,
		},
	}
}

// LoadLinearModel reads a JSON model file. An empty path yields the built-in model.
func LoadLinearModel(path string) (*LinearModel, error) {
	if path == "" {
		return DefaultLinearModel(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrModelLoad, path, err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrModelLoad, path, err)
	}
	if m.Type != modelTypeLinear {
		return nil, fmt.Errorf("%w: unsupported model type %q", ErrModelLoad, m.Type)
	}
	if !finite(m.Intercept, m.Coefficients.Wake, m.Coefficients.EstimatedSleep, m.Coefficients.Coffee) {
		return nil, fmt.Errorf("%w: non-finite coefficient in %s", ErrModelLoad, path)
	}

	return &m, nil
}

func (m *LinearModel) Predict(ctx context.Context, f domain.Features) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	if !finite(f.Wake, f.EstimatedSleep, f.Coffee) {
		return domain.Prediction{}, fmt.Errorf("%w: non-finite feature %+v", ErrPrediction, f)
	}

	actual := m.Intercept +
		m.Coefficients.Wake*f.Wake +
		m.Coefficients.EstimatedSleep*f.EstimatedSleep +
		m.Coefficients.Coffee*f.Coffee

	return domain.Prediction{ActualSleep: actual}, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
