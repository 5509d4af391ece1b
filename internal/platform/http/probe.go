package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HealthReport は /healthz が返すボディです。
type HealthReport struct {
	Status          string `json:"status"`
	Areas           int    `json:"areas"`
	CommercialTypes int    `json:"commercial_types"`
}

// LocalBaseURL は port で待ち受けるサーバーのループバックURLを返します。
func LocalBaseURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}

// ProbeHealth は GET {baseURL}/healthz を呼び出し、レポートをデコードします。
// 200以外のステータス、または status が "ok" でないレポートはエラーとします。
func ProbeHealth(ctx context.Context, client *http.Client, baseURL string) (HealthReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/healthz", nil)
	if err != nil {
		return HealthReport{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return HealthReport{}, fmt.Errorf("health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return HealthReport{}, fmt.Errorf("health request: unexpected status %d", resp.StatusCode)
	}
	var report HealthReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return HealthReport{}, fmt.Errorf("decode health report: %w", err)
	}
	if report.Status != "ok" {
		return report, fmt.Errorf("server reports status %q", report.Status)
	}
	return report, nil
}
