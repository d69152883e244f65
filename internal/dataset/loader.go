// Package dataset loads the clustered road-segment CSV produced by the
// offline pipeline and exposes it as an immutable in-memory table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

// ErrDatasetMissing indicates the cluster CSV does not exist. This is fatal
// at startup: the service has nothing to serve without it.
var ErrDatasetMissing = errors.New("dataset file missing")

// requiredColumns are the CSV columns written by the clustering pipeline.
var requiredColumns = []string{"segment", "cluster_id", "category", "avg_raw_traffic"}

// LoadCSV reads segment records from the cluster CSV at path.
func LoadCSV(path string) ([]models.SegmentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetMissing, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return records, nil
}

func parseCSV(r io.Reader) ([]models.SegmentRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Map column names to positions so extra columns and reordering are
	// tolerated.
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var records []models.SegmentRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.New("dataset contains no rows")
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (models.SegmentRecord, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	segment := field("segment")
	if segment == "" {
		return models.SegmentRecord{}, errors.New("empty segment id")
	}

	clusterID, err := strconv.Atoi(field("cluster_id"))
	if err != nil {
		return models.SegmentRecord{}, fmt.Errorf("invalid cluster_id %q", field("cluster_id"))
	}

	avg, err := strconv.ParseFloat(field("avg_raw_traffic"), 64)
	if err != nil {
		return models.SegmentRecord{}, fmt.Errorf("invalid avg_raw_traffic %q", field("avg_raw_traffic"))
	}
	if avg < 0 {
		return models.SegmentRecord{}, fmt.Errorf("negative avg_raw_traffic %v", avg)
	}

	category := field("category")
	if category == "" {
		category = models.CategoryForCluster(clusterID)
	}

	return models.SegmentRecord{
		Segment:    segment,
		ClusterID:  clusterID,
		Category:   category,
		AvgTraffic: avg,
	}, nil
}
