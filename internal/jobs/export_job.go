package jobs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/view"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type Lister interface {
	List(ctx context.Context) ([]model.Product, error)
}

// ExportJob writes an export of the whole collection into Dir, one file per
// day and format. A second run on the same day replaces that day's file.
type ExportJob struct {
	Lister Lister
	Dir    string
	// Format is view.FormatCSV or view.FormatXLSX. Empty means CSV.
	Format string
	Now    func() time.Time
}

func writerFor(format string) (func(io.Writer, []model.Product) error, error) {
	switch format {
	case view.FormatCSV:
		return view.WriteCSV, nil
	case view.FormatXLSX:
		return view.WriteXLSX, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// Run writes the export and returns the path of the file. The file is written
// to a temporary name first and renamed into place.
func (j *ExportJob) Run(ctx context.Context) (string, error) {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	format := j.Format
	if format == "" {
		format = view.FormatCSV
	}
	write, err := writerFor(format)
	if err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}

	products, err := j.Lister.List(ctx)
	if err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}
	if err := os.MkdirAll(j.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}

	path := filepath.Join(j.Dir, view.ExportFilename(now(), format))
	tmp, err := os.CreateTemp(j.Dir, ".estoque-*."+format)
	if err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, products); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export job: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("export job: %w", err)
	}
	zap.L().Debug("export written", zap.String("path", path), zap.Int("products", len(products)))
	return path, nil
}

// Start schedules job on a new cron scheduler and starts it. An empty
// schedule disables the job and returns a nil scheduler.
func Start(schedule string, job *ExportJob) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}
	if job.Format != "" {
		if _, err := writerFor(job.Format); err != nil {
			return nil, err
		}
	}

	sched := cron.New(cron.WithParser(cronParser))
	_, err := sched.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		path, err := job.Run(ctx)
		if err != nil {
			zap.S().Errorf("scheduled export failed: %s", err.Error())
			return
		}
		zap.S().Infof("scheduled export written to %s", path)
	})
	if err != nil {
		return nil, fmt.Errorf("export schedule %q: %w", schedule, err)
	}

	sched.Start()
	return sched, nil
}
