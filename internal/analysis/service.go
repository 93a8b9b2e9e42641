package analysis

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/akverma/loanlens/internal/dataset"
	"github.com/akverma/loanlens/internal/tree"
)

// Config controls one analysis run.
type Config struct {
	// DataPath is the CSV file holding the loan applications.
	DataPath string

	// TestFraction of rows held out for evaluation.
	TestFraction float64

	// Seed for the reproducible train/test partition.
	Seed int64

	// Tree is the classifier fitting configuration.
	Tree tree.Config
}

// DefaultConfig returns the standard run configuration for a dataset.
func DefaultConfig(dataPath string) Config {
	return Config{
		DataPath:     dataPath,
		TestFraction: 0.2,
		Seed:         tree.DefaultSeed,
		Tree:         tree.DefaultConfig(),
	}
}

// Session is the result of one analysis run: the fitted model bound to
// its training columns, and the held-out evaluation scores. Read-only
// after Run, so concurrent decisions can share it without locking.
type Session struct {
	Model   *tree.Classifier
	Columns []string
	Metrics tree.Metrics

	Rows      int
	TrainRows int
	TestRows  int
}

// Run loads and preprocesses the dataset, fits the classifier on the
// training partition, and scores it on the held-out partition. Any
// load or parse failure halts the run before training; no partial
// dataset is used.
func Run(cfg Config, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	tbl, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		zap.String("path", cfg.DataPath),
		zap.Int("rows", len(tbl.Rows)),
		zap.Int("columns", len(tbl.Columns)))

	frame, y, err := dataset.Preprocess(tbl)
	if err != nil {
		return nil, fmt.Errorf("preprocess: %w", err)
	}

	trainIdx, testIdx := tree.Split(len(frame.Rows), cfg.TestFraction, cfg.Seed)
	trainX, trainY := tree.Take(frame.Rows, y, trainIdx)
	testX, testY := tree.Take(frame.Rows, y, testIdx)

	model, err := tree.Fit(trainX, trainY, frame.Columns, cfg.Tree)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	var metrics tree.Metrics
	if len(testX) > 0 {
		pred, err := model.PredictAll(testX)
		if err != nil {
			return nil, fmt.Errorf("evaluate: %w", err)
		}
		metrics = tree.Evaluate(testY, pred)
	}
	log.Info("model trained",
		zap.Int("train_rows", len(trainX)),
		zap.Int("test_rows", len(testX)),
		zap.Float64("accuracy", metrics.Accuracy),
		zap.Float64("f1", metrics.F1))

	return &Session{
		Model:     model,
		Columns:   frame.Columns,
		Metrics:   metrics,
		Rows:      len(frame.Rows),
		TrainRows: len(trainX),
		TestRows:  len(testX),
	}, nil
}
