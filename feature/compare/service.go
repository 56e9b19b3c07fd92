package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"msforge/core/database"
	"msforge/core/diff"
	"msforge/core/metrics"
	"msforge/core/msdata"
	"msforge/feature/compare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrInvalidRequest is returned when a request misses a snapshot key.
	ErrInvalidRequest = errors.New("compare: invalid request")
	// ErrNoDatabase is returned by report queries when persistence is disabled.
	ErrNoDatabase = errors.New("compare: report database not configured")
	// ErrReportNotFound is returned for unknown report ids.
	ErrReportNotFound = errors.New("compare: report not found")
)

// Snapshots loads documents by key.
type Snapshots interface {
	Load(ctx context.Context, key string) (*msdata.Document, error)
}

// Request selects the snapshots to compare and overrides the configured
// defaults. Ignore flags can only be switched on.
type Request struct {
	A                           string  `json:"a"`
	B                           string  `json:"b"`
	Precision                   float64 `json:"precision,omitempty"`
	IgnoreMetadata              bool    `json:"ignore_metadata,omitempty"`
	IgnoreChromatograms         bool    `json:"ignore_chromatograms,omitempty"`
	IgnoreSpectra               bool    `json:"ignore_spectra,omitempty"`
	IgnoreIdentity              bool    `json:"ignore_identity,omitempty"`
	IgnoreVersions              bool    `json:"ignore_versions,omitempty"`
	IgnoreDataProcessing        bool    `json:"ignore_data_processing,omitempty"`
	IgnoreExtraBinaryDataArrays bool    `json:"ignore_extra_binary_data_arrays,omitempty"`
	// Record persists the report; nil means true.
	Record *bool `json:"record,omitempty"`
}

// Options merges the request into defaults.
func (r Request) Options(defaults diff.Config) []diff.Option {
	opts := defaults.Options()
	if r.Precision > 0 {
		opts = append(opts, diff.WithPrecision(r.Precision))
	}
	flags := []struct {
		set bool
		opt func() diff.Option
	}{
		{r.IgnoreMetadata, diff.IgnoreMetadata},
		{r.IgnoreChromatograms, diff.IgnoreChromatograms},
		{r.IgnoreSpectra, diff.IgnoreSpectra},
		{r.IgnoreIdentity, diff.IgnoreIdentity},
		{r.IgnoreVersions, diff.IgnoreVersions},
		{r.IgnoreDataProcessing, diff.IgnoreDataProcessing},
		{r.IgnoreExtraBinaryDataArrays, diff.IgnoreExtraBinaryDataArrays},
	}
	for _, f := range flags {
		if f.set {
			opts = append(opts, f.opt())
		}
	}
	return opts
}

// Service compares snapshots and stores the reports.
type Service struct {
	snapshots Snapshots
	db        *gorm.DB
	defaults  diff.Config
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewService creates a new compare service. db and m may be nil.
func NewService(snapshots Snapshots, db *gorm.DB, defaults diff.Config, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		snapshots: snapshots,
		db:        db,
		defaults:  defaults,
		metrics:   m,
		logger:    logger,
	}
}

// Migrate creates the report table and verifies its columns.
func (s *Service) Migrate() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.AutoMigrate(&models.Report{}); err != nil {
		return fmt.Errorf("failed to migrate reports: %w", err)
	}
	missing, err := database.MissingColumns(s.db, models.Report{}.TableName(), models.Columns()...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("report table is missing columns %v", missing)
	}
	return nil
}

// Compare loads both snapshots, diffs them and records the report when a
// database is configured.
func (s *Service) Compare(ctx context.Context, req Request) (*models.Report, error) {
	if req.A == "" || req.B == "" {
		return nil, fmt.Errorf("%w: both a and b are required", ErrInvalidRequest)
	}

	var a, b *msdata.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = s.snapshots.Load(gctx, req.A)
		return err
	})
	g.Go(func() (err error) {
		b, err = s.snapshots.Load(gctx, req.B)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.ObserveDiff(metrics.ResultError, 0)
		return nil, err
	}

	start := time.Now()
	res, err := diff.Documents(a, b, append(req.Options(s.defaults), diff.WithLogger(s.logger))...)
	if err != nil {
		s.metrics.ObserveDiff(metrics.ResultError, time.Since(start))
		return nil, err
	}
	result := metrics.ResultEqual
	if res.Different() {
		result = metrics.ResultDifferent
	}
	s.metrics.ObserveDiff(result, res.Elapsed)

	report := models.NewReport(uuid.NewString(), req.A, req.B, res.Report())
	s.logger.Info("Comparison finished",
		zap.String("id", report.ID),
		zap.String("a", req.A),
		zap.String("b", req.B),
		zap.Bool("different", report.Different),
		zap.Int64("elapsed_ms", report.ElapsedMillis),
	)

	if s.db != nil && (req.Record == nil || *req.Record) {
		if err := s.Record(ctx, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// Record persists a report.
func (s *Service) Record(ctx context.Context, report *models.Report) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// ListReports returns report summaries, newest first, without residual text.
func (s *Service) ListReports(ctx context.Context, limit, offset int) ([]models.Report, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var reports []models.Report
	err := s.db.WithContext(ctx).
		Omit("a_minus_b", "b_minus_a").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetReport returns one report with its residual text.
func (s *Service) GetReport(ctx context.Context, id string) (*models.Report, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var report models.Report
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", id, ErrReportNotFound)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}
