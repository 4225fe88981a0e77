package doctor

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goalverse/goalverse/internal/config"
	"github.com/goalverse/goalverse/internal/storage"
)

// Diagnostics holds diagnostic information
type Diagnostics struct {
	Checks []CheckResult `json:"checks"`
	Issues []string      `json:"issues"`
	Status string        `json:"status"`
}

// CheckResult represents the result of a single check
type CheckResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"` // "pass", "fail", "warn"
	Message  string `json:"message"`
	Severity string `json:"severity"` // "info", "warning", "error"
}

// Runner runs diagnostic checks
type Runner struct {
	config *config.Config
	db     *storage.DB
}

// NewRunner creates a new diagnostic runner
func NewRunner(cfg *config.Config, db *storage.DB) *Runner {
	return &Runner{
		config: cfg,
		db:     db,
	}
}

// RunAll runs all diagnostic checks
func (d *Runner) RunAll() *Diagnostics {
	var results []CheckResult
	var issues []string

	results = append(results, d.checkConfiguration()...)
	results = append(results, d.checkFileSystemPermissions()...)
	results = append(results, d.checkDatabaseConnectivity()...)
	results = append(results, d.checkStorageHealth()...)
	results = append(results, d.checkVerseAPI()...)

	for _, result := range results {
		if result.Status == "fail" {
			issues = append(issues, result.Message)
		}
	}

	status := "healthy"
	if len(issues) > 0 {
		status = "issues_found"
	}

	return &Diagnostics{
		Checks: results,
		Issues: issues,
		Status: status,
	}
}

// checkDatabaseConnectivity checks database connectivity and basic operations
func (d *Runner) checkDatabaseConnectivity() []CheckResult {
	var results []CheckResult

	if err := d.db.GetConnection().Ping(); err != nil {
		results = append(results, CheckResult{
			Name:     "database_connectivity",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot connect to database: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "database_connectivity",
			Status:   "pass",
			Message:  "Database connection successful",
			Severity: "info",
		})
	}

	if _, err := d.db.GetConnection().Exec("SELECT 1"); err != nil {
		results = append(results, CheckResult{
			Name:     "database_query",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot execute basic query: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "database_query",
			Status:   "pass",
			Message:  "Basic database query successful",
			Severity: "info",
		})
	}

	return results
}

// checkFileSystemPermissions checks filesystem permissions for the .goalverse directory
func (d *Runner) checkFileSystemPermissions() []CheckResult {
	var results []CheckResult

	dir := d.config.GoalverseDir

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		results = append(results, CheckResult{
			Name:     "goalverse_directory_exists",
			Status:   "fail",
			Message:  fmt.Sprintf(".goalverse directory does not exist: %s", dir),
			Severity: "error",
		})
		return results // Early return since other checks will fail
	} else if err != nil {
		results = append(results, CheckResult{
			Name:     "goalverse_directory_access",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot access .goalverse directory: %v", err),
			Severity: "error",
		})
		return results
	}

	if err := d.testDirectoryPermissions(dir); err != nil {
		results = append(results, CheckResult{
			Name:     "goalverse_directory_permissions",
			Status:   "fail",
			Message:  fmt.Sprintf("Insufficient permissions for .goalverse directory: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "goalverse_directory_permissions",
			Status:   "pass",
			Message:  "Sufficient permissions for .goalverse directory",
			Severity: "info",
		})
	}

	logsDir := filepath.Join(dir, "logs")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		results = append(results, CheckResult{
			Name:     "logs_exists",
			Status:   "warn",
			Message:  fmt.Sprintf("Subdirectory does not exist: %s", logsDir),
			Severity: "warning",
		})
	} else if err != nil {
		results = append(results, CheckResult{
			Name:     "logs_access",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot access subdirectory: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "logs_access",
			Status:   "pass",
			Message:  fmt.Sprintf("Accessible subdirectory: %s", logsDir),
			Severity: "info",
		})
	}

	return results
}

// testDirectoryPermissions tests if we can read and write to a directory
func (d *Runner) testDirectoryPermissions(dir string) error {
	testFile := filepath.Join(dir, ".permission_test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return err
	}
	os.Remove(testFile)
	return nil
}

// checkConfiguration checks configuration validity
func (d *Runner) checkConfiguration() []CheckResult {
	var results []CheckResult

	if err := d.config.Validate(); err != nil {
		results = append(results, CheckResult{
			Name:     "configuration_validation",
			Status:   "fail",
			Message:  fmt.Sprintf("Configuration validation failed: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "configuration_validation",
			Status:   "pass",
			Message:  "Configuration is valid",
			Severity: "info",
		})
	}

	return results
}

// checkStorageHealth checks the health of the storage system
func (d *Runner) checkStorageHealth() []CheckResult {
	var results []CheckResult

	if _, err := os.Stat(d.config.DBPath); os.IsNotExist(err) {
		results = append(results, CheckResult{
			Name:     "database_file_exists",
			Status:   "fail",
			Message:  fmt.Sprintf("Database file does not exist: %s", d.config.DBPath),
			Severity: "error",
		})
	} else if err != nil {
		results = append(results, CheckResult{
			Name:     "database_file_access",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot access database file: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "database_file_access",
			Status:   "pass",
			Message:  "Database file is accessible",
			Severity: "info",
		})
	}

	if _, err := d.db.GetConnection().Exec("PRAGMA integrity_check"); err != nil {
		results = append(results, CheckResult{
			Name:     "database_integrity",
			Status:   "fail",
			Message:  fmt.Sprintf("Database integrity check failed: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "database_integrity",
			Status:   "pass",
			Message:  "Database integrity check passed",
			Severity: "info",
		})
	}

	var goalCount int
	if err := d.db.GetConnection().QueryRow("SELECT COUNT(*) FROM goals").Scan(&goalCount); err != nil {
		results = append(results, CheckResult{
			Name:     "goals_table",
			Status:   "fail",
			Message:  fmt.Sprintf("Cannot query goals table: %v", err),
			Severity: "error",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "goals_table",
			Status:   "pass",
			Message:  fmt.Sprintf("Goals table accessible (%d goals)", goalCount),
			Severity: "info",
		})
	}

	return results
}

// checkVerseAPI checks whether the remote verse API is reachable. A failure
// here is a warning, not an error: the guidance engine degrades to curated
// fallback content when the API is down.
func (d *Runner) checkVerseAPI() []CheckResult {
	var results []CheckResult

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(d.config.APIBaseURL + "/surah/1")
	if err != nil {
		results = append(results, CheckResult{
			Name:     "verse_api_reachable",
			Status:   "warn",
			Message:  fmt.Sprintf("Verse API unreachable: %v (curated fallback verses will be used)", err),
			Severity: "warning",
		})
		return results
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		results = append(results, CheckResult{
			Name:     "verse_api_reachable",
			Status:   "warn",
			Message:  fmt.Sprintf("Verse API returned status %d", resp.StatusCode),
			Severity: "warning",
		})
	} else {
		results = append(results, CheckResult{
			Name:     "verse_api_reachable",
			Status:   "pass",
			Message:  "Verse API is reachable",
			Severity: "info",
		})
	}

	return results
}

// PrintReport prints a formatted diagnostic report
func (d *Diagnostics) PrintReport() {
	fmt.Printf("=== goalverse Diagnostic Report ===\n")
	fmt.Printf("Status: %s\n\n", d.Status)

	if len(d.Issues) > 0 {
		fmt.Printf("Issues Found:\n")
		for i, issue := range d.Issues {
			fmt.Printf("  %d. %s\n", i+1, issue)
		}
		fmt.Println()
	}

	fmt.Printf("Detailed Checks:\n")
	for _, check := range d.Checks {
		statusSymbol := "✓"
		if check.Status == "fail" {
			statusSymbol = "✗"
		} else if check.Status == "warn" {
			statusSymbol = "!"
		}

		fmt.Printf("  %s %s: %s\n", statusSymbol, check.Name, check.Message)
	}

	fmt.Println("\nRecommendations:")
	if len(d.Issues) == 0 {
		fmt.Println("  ✓ System is operating normally")
	} else {
		fmt.Println("  • Check the .goalverse directory permissions")
		fmt.Println("  • Verify the database file is not corrupted")
		fmt.Println("  • Ensure sufficient disk space is available")
		fmt.Println("  • Review configuration settings")
	}
}
