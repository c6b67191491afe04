// Package model loads the pre-trained air quality model artifact and runs
// in-process inference against it. The artifact is produced by the training
// pipeline as a JSON export of a multi-output gradient boosted tree ensemble;
// this package treats its contents as an opaque contract with that pipeline.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/types"
)

// Feature names an artifact may declare. The training pipeline decides which
// of these the model was fitted on; callers materialize them in the declared
// order before calling Predict.
const (
	FeatureLatitude     = "Latitude"
	FeatureLongitude    = "Longitude"
	FeatureSinLatitude  = "SinLatitude"
	FeatureCosLatitude  = "CosLatitude"
	FeatureSinLongitude = "SinLongitude"
	FeatureCosLongitude = "CosLongitude"
)

const supportedSchemaVersion = 1

// node is one node of a flattened regression tree. Children always have a
// larger index than their parent, so a walk from the root terminates.
type node struct {
	IsLeaf    bool    `json:"is_leaf"`
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      float64 `json:"leaf"`
}

type tree struct {
	Nodes []node `json:"nodes"`
}

// eval walks the tree for the given feature vector and returns the leaf value.
func (t tree) eval(features []float64) float64 {
	i := 0
	for !t.Nodes[i].IsLeaf {
		n := t.Nodes[i]
		if features[n.Feature] < n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.Nodes[i].Leaf
}

type artifactFile struct {
	SchemaVersion int       `json:"schema_version"`
	Features      []string  `json:"features"`
	Targets       []string  `json:"targets"`
	BaseScore     []float64 `json:"base_score"`
	LearningRate  float64   `json:"learning_rate"`
	Trees         [][]tree  `json:"trees"`
}

// Artifact is the loaded model. It is immutable after Load and safe for
// concurrent use by all request handlers without locking.
type Artifact struct {
	features     []string
	targets      []string
	baseScore    []float64
	learningRate float64
	trees        [][]tree
}

// Load reads and validates the model artifact at path. Any error here means
// the model is unavailable and the process must not start serving traffic.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %s: %w", path, err)
	}

	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}

	if err := validate(&file); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}

	return &Artifact{
		features:     file.Features,
		targets:      file.Targets,
		baseScore:    file.BaseScore,
		learningRate: file.LearningRate,
		trees:        file.Trees,
	}, nil
}

func validate(file *artifactFile) error {
	if file.SchemaVersion != supportedSchemaVersion {
		return fmt.Errorf("unsupported schema version %d, want %d", file.SchemaVersion, supportedSchemaVersion)
	}

	if len(file.Features) == 0 {
		return fmt.Errorf("artifact declares no features")
	}
	for _, name := range file.Features {
		switch name {
		case FeatureLatitude, FeatureLongitude,
			FeatureSinLatitude, FeatureCosLatitude,
			FeatureSinLongitude, FeatureCosLongitude:
		default:
			return fmt.Errorf("unknown feature %q", name)
		}
	}

	// The ensemble must predict exactly the six known pollutants, each once.
	// The order is the artifact's to choose.
	if len(file.Targets) != len(types.Pollutants()) {
		return fmt.Errorf("artifact declares %d targets, want %d", len(file.Targets), len(types.Pollutants()))
	}
	seen := make(map[string]bool, len(file.Targets))
	for _, name := range file.Targets {
		if !types.Pollutant(name).IsValid() {
			return fmt.Errorf("unknown target %q", name)
		}
		if seen[name] {
			return fmt.Errorf("duplicate target %q", name)
		}
		seen[name] = true
	}

	if len(file.BaseScore) != len(file.Targets) {
		return fmt.Errorf("artifact declares %d base scores, want %d", len(file.BaseScore), len(file.Targets))
	}
	if len(file.Trees) != len(file.Targets) {
		return fmt.Errorf("artifact declares trees for %d targets, want %d", len(file.Trees), len(file.Targets))
	}
	if file.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %g", file.LearningRate)
	}

	for ti, trees := range file.Trees {
		for wi, tr := range trees {
			if len(tr.Nodes) == 0 {
				return fmt.Errorf("target %d tree %d has no nodes", ti, wi)
			}
			for ni, n := range tr.Nodes {
				if n.IsLeaf {
					continue
				}
				if n.Feature < 0 || n.Feature >= len(file.Features) {
					return fmt.Errorf("target %d tree %d node %d references feature %d out of range", ti, wi, ni, n.Feature)
				}
				// Children must come after their parent so evaluation terminates.
				if n.Left <= ni || n.Left >= len(tr.Nodes) || n.Right <= ni || n.Right >= len(tr.Nodes) {
					return fmt.Errorf("target %d tree %d node %d has child index out of range", ti, wi, ni)
				}
			}
		}
	}

	return nil
}

// Features returns the feature names the model expects, in input order.
func (a *Artifact) Features() []string {
	return a.features
}

// Targets returns the pollutant names the model predicts, in output order.
func (a *Artifact) Targets() []string {
	return a.targets
}

// Predict runs inference for a single feature vector and returns one value
// per target, in Targets() order. The computation is deterministic and does
// not mutate the artifact.
func (a *Artifact) Predict(features []float64) ([]float64, error) {
	if len(features) != len(a.features) {
		return nil, fmt.Errorf("expected %d features, got %d", len(a.features), len(features))
	}

	out := make([]float64, len(a.targets))
	for ti := range a.targets {
		sum := a.baseScore[ti]
		for _, tr := range a.trees[ti] {
			sum += a.learningRate * tr.eval(features)
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			return nil, fmt.Errorf("non-finite prediction for target %s", a.targets[ti])
		}
		out[ti] = sum
	}
	return out, nil
}
