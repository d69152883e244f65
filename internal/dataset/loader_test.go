package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `segment,cluster_id,category,avg_raw_traffic
a0a1,2,High Traffic,15.4
a0b0,0,Low Traffic,1.2
a1a0,1,Medium Traffic,7.8
b1c1,2,High Traffic,12.1
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clusters.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	records, err := LoadCSV(writeTempCSV(t, sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[0].Segment != "a0a1" || records[0].ClusterID != 2 || records[0].AvgTraffic != 15.4 {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Category != "Low Traffic" {
		t.Errorf("category = %q", records[1].Category)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, err := LoadCSV(missing)
	if !errors.Is(err, ErrDatasetMissing) {
		t.Fatalf("got %v, want ErrDatasetMissing", err)
	}
	// The fatal startup message must name the missing path.
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestLoadCSVReorderedColumns(t *testing.T) {
	csv := `avg_raw_traffic,segment,category,cluster_id
3.5,x0x1,Low Traffic,0
`
	records, err := LoadCSV(writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if records[0].Segment != "x0x1" || records[0].AvgTraffic != 3.5 || records[0].ClusterID != 0 {
		t.Errorf("record = %+v", records[0])
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csv := `segment,cluster_id,avg_raw_traffic
a,0,1.0
`
	if _, err := LoadCSV(writeTempCSV(t, csv)); err == nil {
		t.Fatal("expected error for missing category column")
	}
}

func TestLoadCSVBadValues(t *testing.T) {
	cases := []string{
		"segment,cluster_id,category,avg_raw_traffic\na,zero,Low Traffic,1.0\n",
		"segment,cluster_id,category,avg_raw_traffic\na,0,Low Traffic,lots\n",
		"segment,cluster_id,category,avg_raw_traffic\na,0,Low Traffic,-4\n",
		"segment,cluster_id,category,avg_raw_traffic\n,0,Low Traffic,1.0\n",
		"segment,cluster_id,category,avg_raw_traffic\n",
	}
	for _, csv := range cases {
		if _, err := LoadCSV(writeTempCSV(t, csv)); err == nil {
			t.Errorf("expected error for %q", csv)
		}
	}
}

func TestLoadCSVEmptyCategoryFallsBackToCluster(t *testing.T) {
	csv := `segment,cluster_id,category,avg_raw_traffic
a,1,,5.0
`
	records, err := LoadCSV(writeTempCSV(t, csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if records[0].Category != "Medium Traffic" {
		t.Errorf("category = %q, want cluster-derived Medium Traffic", records[0].Category)
	}
}
