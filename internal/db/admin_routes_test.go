package db

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Critlist/witskit/internal/wits"
)

// TestAttachAdminRoutes_AllEndpoints tests that all admin routes are registered
func TestAttachAdminRoutes_AllEndpoints(t *testing.T) {
	db := setupTestDB(t)

	mux := http.NewServeMux()
	db.AttachAdminRoutes(mux)

	// The endpoints may answer 403 behind debug-access checks, but never 404.
	endpoints := []string{
		"/debug/db-stats",
		"/debug/backup",
		"/debug/tailsql/",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, endpoint, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound {
				t.Errorf("Endpoint %s should be registered, got 404", endpoint)
			}
		})
	}
}

func TestGetDatabaseStats(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		frame := frameAt(base.Add(time.Duration(i)*time.Second),
			numPoint("0108", "DBTM", "3650.40", 3650.40, wits.FEET),
			numPoint("0113", "ROPA", "23.38", 23.38, wits.FHR))
		if err := db.StoreFrame(frame); err != nil {
			t.Fatalf("Failed to store frame %d: %v", i, err)
		}
	}

	stats, err := db.GetDatabaseStats()
	if err != nil {
		t.Fatalf("GetDatabaseStats failed: %v", err)
	}

	if stats.TotalSizeMB <= 0 {
		t.Error("Expected positive total size")
	}

	tableMap := make(map[string]*TableStats)
	for i := range stats.Tables {
		tableMap[stats.Tables[i].Name] = &stats.Tables[i]
	}

	if fr, ok := tableMap["frames"]; ok {
		if fr.RowCount != 5 {
			t.Errorf("Expected 5 frames rows, got %d", fr.RowCount)
		}
	} else {
		t.Error("Expected frames table in stats")
	}

	if dp, ok := tableMap["data_points"]; ok {
		if dp.RowCount != 10 {
			t.Errorf("Expected 10 data_points rows, got %d", dp.RowCount)
		}
	} else {
		t.Error("Expected data_points table in stats")
	}

	// Verify tables are sorted by size (descending)
	for i := 1; i < len(stats.Tables); i++ {
		if stats.Tables[i].SizeMB > stats.Tables[i-1].SizeMB {
			t.Error("Tables should be sorted by size descending")
			break
		}
	}
}

// TestDBStatsEndpoint_JSONResponse tests the db-stats endpoint JSON response
func TestDBStatsEndpoint_JSONResponse(t *testing.T) {
	db := setupTestDB(t)

	mux := http.NewServeMux()
	db.AttachAdminRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/debug/db-stats", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	// If we get 200, validate the JSON
	if w.Code == http.StatusOK {
		var stats DatabaseStats
		if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
			t.Errorf("Failed to parse db-stats response: %v", err)
		}
	}
}
